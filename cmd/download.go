package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/brogergvhs/mangaread/internal/archive"
	"github.com/brogergvhs/mangaread/internal/chapters"
	"github.com/brogergvhs/mangaread/internal/config"
	"github.com/brogergvhs/mangaread/internal/downloader"
	"github.com/brogergvhs/mangaread/internal/providers/mangaread"
	"github.com/brogergvhs/mangaread/internal/ui"
	"github.com/brogergvhs/mangaread/internal/util"

	"github.com/spf13/cobra"
)

var (
	// selection
	flagURL          string
	flagChapter      string
	flagRange        string
	flagList         string
	flagExcludeRange string
	flagExcludeList  string
	flagAllowExt     string

	// runtime
	flagOutput         string
	flagImageWorkers   int
	flagChapterWorkers int
	flagKeepFolders    bool
	flagDryRun         bool
	flagSkipBroken     bool
	flagArchive        string
	flagNoArchive      bool

	// headers/auth
	flagCookie           string
	flagCookieFile       string
	flagUserAgent        string
	flagCloudflareBypass bool
	flagRateLimit        float64
)

func init() {
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download chapters of a mangaread.org manga as CBZ files. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runDownload,
	}

	// selection
	downloadCmd.Flags().StringVar(&flagURL, "url", "", "manga or chapter page URL")
	downloadCmd.Flags().StringVar(&flagChapter, "chapter", "", "download single chapter by label or index (e.g. 28.5 or 5)")
	downloadCmd.Flags().StringVar(&flagRange, "range", "", "download range of chapters by index (e.g. 5-12 or 5-)")
	downloadCmd.Flags().StringVar(&flagList, "list", "", "download specific chapter indices (e.g. 1,3,5)")
	downloadCmd.Flags().StringVar(&flagExcludeRange, "exclude-range", "", "skip a range of chapter indices")
	downloadCmd.Flags().StringVar(&flagExcludeList, "exclude-list", "", "skip specific chapter indices")
	downloadCmd.Flags().StringVar(&flagAllowExt, "allow-ext", "", "allowed image extensions (e.g. \"webp|jpg|png\")")

	// runtime
	downloadCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for CBZ files")
	downloadCmd.Flags().IntVar(&flagImageWorkers, "image-workers", 5, "parallel image downloads per chapter")
	downloadCmd.Flags().IntVar(&flagChapterWorkers, "chapter-workers", 2, "parallel chapter downloads")
	downloadCmd.Flags().BoolVar(&flagKeepFolders, "keep-folders", false, "keep temporary folders")
	downloadCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show what would be downloaded, don't download")
	downloadCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "skip failed images instead of failing the whole chapter")
	downloadCmd.Flags().StringVar(&flagArchive, "archive", "", "download archive database (default: in the config folder)")
	downloadCmd.Flags().BoolVar(&flagNoArchive, "no-archive", false, "neither read nor update the download archive")

	// headers/auth
	downloadCmd.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	downloadCmd.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	downloadCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	downloadCmd.Flags().BoolVar(&flagCloudflareBypass, "cloudflare-bypass", false, "use browser-like TLS settings against Cloudflare")

	downloadCmd.Flags().Float64Var(&flagRateLimit, "rate-limit", 0, "max HTTP requests per second (default from config)")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig:        flagIgnoreConfig,
		Debug:               flagDebug,
		Output:              flagOutput,
		KeepFolders:         flagKeepFolders,
		DefaultURL:          flagURL,
		DefaultRange:        flagRange,
		DefaultExcludeRange: flagExcludeRange,
		DefaultList:         flagList,
		DefaultExcludeList:  flagExcludeList,
		Cookie:              flagCookie,
		CookieFile:          flagCookieFile,
		UserAgent:           flagUserAgent,
		CloudflareBypass:    flagCloudflareBypass,
		RateLimit:           flagRateLimit,
		SkipBroken:          flagSkipBroken,
		Archive:             flagArchive,
	})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("image-workers") {
		cfg.ImageWorkers = flagImageWorkers
	}
	if cmd.Flags().Changed("chapter-workers") {
		cfg.ChapterWorkers = flagChapterWorkers
	}
	if flagAllowExt != "" {
		cfg.AllowExt = splitExt(flagAllowExt)
	}

	log := ui.NewLogger(cfg.Debug)
	defer log.Sync()

	fmt.Printf("Config: %s\n", usedPath)
	cfg.Print(os.Stdout)
	fmt.Println()

	if cfg.DefaultURL == "" {
		return fmt.Errorf("missing --url and no default_url in config")
	}

	ctx, stop := util.InterruptContext(cmd.Context())
	defer stop()

	scr, client, err := newScraper(cfg, log)
	if err != nil {
		return err
	}

	found, err := scr.GetChapters(ctx, cfg.DefaultURL)
	if err != nil {
		if mangaread.IsNotFound(err, mangaread.KindManga) {
			return fmt.Errorf("manga not found: %s", cfg.DefaultURL)
		}
		return err
	}
	all := chapters.Wrap(found)

	sel := chapters.Selection{
		Chapter:      flagChapter,
		Range:        cfg.DefaultRange,
		List:         cfg.DefaultList,
		ExcludeRange: cfg.DefaultExcludeRange,
		ExcludeList:  cfg.DefaultExcludeList,
	}
	if sel.IsEmpty() {
		fmt.Printf("Found %d chapters on the site.\n\n", len(all))
	}

	selected := chapters.Select(all, sel)
	if len(selected) == 0 {
		if flagChapter != "" {
			return fmt.Errorf("chapter '%s' not found", flagChapter)
		}
		return fmt.Errorf("no chapters selected")
	}

	if flagDryRun {
		fmt.Printf("Dry-run: %d chapters selected.\n\n", len(selected))
		for i, ch := range selected {
			fmt.Printf("%3d) %s  [%s]\n    %s\n", i+1, ch.Title, ch.Label, ch.URL)
		}
		return nil
	}

	var arc *archive.Archive
	if !flagNoArchive {
		path := cfg.Archive
		if path == "" {
			path = config.DefaultArchivePath()
		}
		if arc, err = archive.Open(path); err != nil {
			return err
		}
		defer func() {
			_ = arc.Close()
		}()

		if selected, err = skipArchived(ctx, arc, selected); err != nil {
			return err
		}
		if len(selected) == 0 {
			fmt.Println("All selected chapters are already in the archive.")
			return nil
		}
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}

	run := &downloadRun{
		cfg:   cfg,
		log:   log,
		scr:   scr,
		dl:    downloader.New(client, log, cfg.AllowExt, cfg.SkipBroken),
		arc:   arc,
		pm:    ui.NewProgressManager(os.Stdout),
		stats: &ui.Stats{},
	}

	start := time.Now()
	run.all(ctx, selected)

	if ctx.Err() != nil {
		fmt.Println("\nInterrupted. Cleaning up...")
		for _, p := range util.CleanupUnfinishedTempFolders(cfg.Output) {
			fmt.Printf("Removed %s\n", p)
		}
		return ctx.Err()
	}

	stats := run.stats
	fmt.Println()
	fmt.Println("Download Summary:")
	fmt.Printf("Chapters: %d\n", stats.TotalChapters.Load())
	fmt.Printf("Skipped:  %d\n", stats.Skipped.Load())
	fmt.Printf("Failed:   %d\n", stats.Failed.Load())
	fmt.Printf("Images:   %d\n", stats.TotalImages.Load())
	fmt.Printf("Data:     %s\n", util.Human(stats.TotalBytes.Load()))
	fmt.Printf("Time:     %s\n", time.Since(start).Round(time.Second))
	if arc != nil {
		if n, err := arc.Len(ctx); err == nil {
			fmt.Printf("Archive:  %d chapters recorded\n", n)
		}
	}

	if n := stats.Failed.Load(); n > 0 {
		return fmt.Errorf("%d chapters failed", n)
	}

	fmt.Println("\nAll done.")
	return nil
}

func skipArchived(ctx context.Context, arc *archive.Archive, in []chapters.Chapter) ([]chapters.Chapter, error) {
	out := make([]chapters.Chapter, 0, len(in))
	for _, ch := range in {
		ok, err := arc.Has(ctx, ch.ArchiveKey())
		if err != nil {
			return nil, err
		}
		if ok {
			fmt.Printf("Already downloaded: %s [%s]\n", ch.Manga, ch.Label)
			continue
		}
		out = append(out, ch)
	}
	return out, nil
}

type downloadRun struct {
	cfg   *config.Config
	log   *ui.Logger
	scr   *mangaread.Scraper
	dl    *downloader.Downloader
	arc   *archive.Archive
	pm    *ui.ProgressManager
	stats *ui.Stats
}

func (r *downloadRun) all(ctx context.Context, selected []chapters.Chapter) {
	sem := make(chan struct{}, max(1, r.cfg.ChapterWorkers))
	var wg sync.WaitGroup

	for _, ch := range selected {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			r.one(ctx, ch)
		}()
	}

	wg.Wait()
	r.pm.Wait()
}

func (r *downloadRun) one(ctx context.Context, ch chapters.Chapter) {
	images, err := r.scr.GetImages(ctx, ch.URL)
	switch {
	case ctx.Err() != nil:
		return
	case mangaread.IsNotFound(err, mangaread.KindChapter):
		r.log.Warnf("Chapter %s is no longer available, skipping", ch.Label)
		r.stats.Skipped.Add(1)
		return
	case err != nil:
		r.log.Errorf("Chapter %s: %v", ch.Label, err)
		r.stats.Failed.Add(1)
		return
	case len(images) == 0:
		r.log.Errorf("No images for %s (%s)", ch.Title, ch.Label)
		r.stats.Failed.Add(1)
		return
	}

	handle := r.pm.Register("Ch." + ch.Label)
	handle.SetTotal(len(images))

	tmpFolder := ch.TempFolder(r.cfg.Output)
	files, bytes, err := r.dl.DownloadImagesConcurrently(ctx, images, tmpFolder, ch.URL, max(1, r.cfg.ImageWorkers), handle)
	if err != nil {
		handle.MarkFailed()
		if !errors.Is(err, context.Canceled) {
			r.log.Errorf("Chapter %s failed: %v", ch.Label, err)
			r.stats.Failed.Add(1)
		}
		util.CleanupFolder(tmpFolder)
		return
	}

	if err := util.CreateCBZ(files, ch.OutputCBZPath(r.cfg.Output)); err != nil {
		r.log.Errorf("CBZ for %s failed: %v", ch.Label, err)
		r.stats.Failed.Add(1)
		util.CleanupFolder(tmpFolder)
		return
	}

	if !r.cfg.KeepFolders {
		util.CleanupFolder(tmpFolder)
	}

	if r.arc != nil {
		if err := r.arc.Add(ctx, ch.ArchiveKey(), ch.URL); err != nil {
			r.log.Errorf("Archive: %v", err)
		}
	}

	r.stats.TotalChapters.Add(1)
	r.stats.TotalImages.Add(int64(len(files)))
	r.stats.TotalBytes.Add(bytes)
}

func splitExt(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' '
	})

	return downloader.NormalizeExtList(fields)
}
