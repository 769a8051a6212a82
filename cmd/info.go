package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/mangaread/internal/providers/mangaread"
	"github.com/brogergvhs/mangaread/internal/ui"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type chapterInfo struct {
	mangaread.ChapterRecord `yaml:",inline"`
	Images                  []string `yaml:"images"`
}

var infoCmd = &cobra.Command{
	Use:   "info [url]",
	Short: "Print the metadata of a manga or chapter page as YAML",
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

		var out any
		if _, ok := mangaread.MatchChapterURL(target); ok {
			rec, images, err := scr.Chapter(cmd.Context(), target)
			if err != nil {
				return err
			}
			out = chapterInfo{ChapterRecord: rec, Images: images}
		} else {
			m, err := scr.Manga(cmd.Context(), target)
			if err != nil {
				return err
			}
			out = m
		}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
