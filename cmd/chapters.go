package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/brogergvhs/mangaread/internal/ui"

	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters [url]",
	Short: "List the chapters of a manga, oldest first, with the indices used by --range and --list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, target, err := loadForURL(args)
		if err != nil {
			return err
		}
		if target == "" {
			return fmt.Errorf("missing url and no default_url in config")
		}

		log := ui.NewLogger(cfg.Debug)
		defer log.Sync()

		scr, _, err := newScraper(cfg, log)
		if err != nil {
			return err
		}

		all, err := scr.GetChapters(cmd.Context(), target)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, "INDEX\tLABEL\tTITLE\tURL")
		for i, ch := range all {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, ch.Label, ch.Title, ch.URL)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(chaptersCmd)
}
