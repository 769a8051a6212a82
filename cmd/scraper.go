package cmd

import (
	"net/http"
	"time"

	"github.com/brogergvhs/mangaread/internal/config"
	"github.com/brogergvhs/mangaread/internal/providers/mangaread"
	"github.com/brogergvhs/mangaread/internal/ui"
	"github.com/brogergvhs/mangaread/internal/util"
)

func newScraper(cfg *config.Config, log *ui.Logger) (*mangaread.Scraper, *http.Client, error) {
	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          30 * time.Second,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		RateLimit:        cfg.RateLimit,
		DebugLogger:      log,
	})
	if err != nil {
		return nil, nil, err
	}

	return mangaread.NewScraper(client, log, mangaread.English), client, nil
}

// loadForURL loads the merged config for the read-only commands, which take
// the target URL as an argument.
func loadForURL(args []string) (*config.Config, string, error) {
	cfg, _, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
	})
	if err != nil {
		return nil, "", err
	}

	target := cfg.DefaultURL
	if len(args) > 0 {
		target = args[0]
	}

	return cfg, target, nil
}
