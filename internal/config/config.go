package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output         string   `yaml:"output"`
	ImageWorkers   int      `yaml:"image_workers"`
	ChapterWorkers int      `yaml:"chapter_workers"`
	KeepFolders    bool     `yaml:"keep_folders"`
	Debug          bool     `yaml:"debug"`
	AllowExt       []string `yaml:"allow_ext"`

	DefaultURL          string `yaml:"default_url"`
	DefaultRange        string `yaml:"default_range"`
	DefaultExcludeRange string `yaml:"default_exclude_range"`
	DefaultList         string `yaml:"default_list"`
	DefaultExcludeList  string `yaml:"default_exclude_list"`

	Cookie           string  `yaml:"cookie"`
	CookieFile       string  `yaml:"cookie_file"`
	UserAgent        string  `yaml:"user_agent"`
	CloudflareBypass bool    `yaml:"cloudflare_bypass"`
	RateLimit        float64 `yaml:"rate_limit"`

	SkipBroken bool   `yaml:"skip_broken"`
	Archive    string `yaml:"archive"`
}

// Options carries the command line values. Zero values mean "not set".
type Options struct {
	IgnoreConfig        bool
	Debug               bool
	Output              string
	ImageWorkers        int
	ChapterWorkers      int
	KeepFolders         bool
	DefaultURL          string
	DefaultRange        string
	DefaultExcludeRange string
	DefaultList         string
	DefaultExcludeList  string
	Cookie              string
	CookieFile          string
	UserAgent           string
	CloudflareBypass    bool
	RateLimit           float64
	SkipBroken          bool
	Archive             string
}

// Environment variables that override the config file.
const (
	EnvCookie    = "MANGAREAD_COOKIE"
	EnvUserAgent = "MANGAREAD_USER_AGENT"
	EnvOutput    = "MANGAREAD_OUTPUT"
	EnvArchive   = "MANGAREAD_ARCHIVE"
)

func DefaultConfig() *Config {
	return &Config{
		Output:         ".",
		ImageWorkers:   5,
		ChapterWorkers: 2,
		AllowExt:       []string{"jpg", "jpeg", "png", "webp"},
		RateLimit:      4,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadDotEnv loads a .env file from the working directory, if there is one.
// Variables already set in the environment are kept.
func LoadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadMerged reads the active config profile and applies environment and
// command line overrides on top of it, in that order. The returned string
// describes where the config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) || activePath == "" {
		cfg := DefaultConfig()
		applyEnv(cfg)
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory, run `mangaread config init` to create one)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	applyEnv(cfg)
	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func applyEnv(c *Config) {
	if v := os.Getenv(EnvCookie); v != "" {
		c.Cookie = v
	}
	if v := os.Getenv(EnvUserAgent); v != "" {
		c.UserAgent = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvArchive); v != "" {
		c.Archive = v
	}
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.ImageWorkers != 0 {
		c.ImageWorkers = o.ImageWorkers
	}
	if o.ChapterWorkers != 0 {
		c.ChapterWorkers = o.ChapterWorkers
	}
	if o.KeepFolders {
		c.KeepFolders = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.DefaultURL != "" {
		c.DefaultURL = o.DefaultURL
	}
	if o.DefaultRange != "" {
		c.DefaultRange = o.DefaultRange
	}
	if o.DefaultExcludeRange != "" {
		c.DefaultExcludeRange = o.DefaultExcludeRange
	}
	if o.DefaultList != "" {
		c.DefaultList = o.DefaultList
	}
	if o.DefaultExcludeList != "" {
		c.DefaultExcludeList = o.DefaultExcludeList
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.RateLimit > 0 {
		c.RateLimit = o.RateLimit
	}
	if o.SkipBroken {
		c.SkipBroken = true
	}
	if o.Archive != "" {
		c.Archive = o.Archive
	}
}

func normalizeDefaults(c *Config) {
	if c.Output == "" {
		c.Output = "."
	}
	if c.ImageWorkers <= 0 {
		c.ImageWorkers = 5
	}
	if c.ChapterWorkers <= 0 {
		c.ChapterWorkers = 2
	}
}

// Print writes the non-default settings of c, one per line. The cookie value
// itself is never printed.
func (c *Config) Print(w io.Writer) {
	p := func(format string, args ...any) {
		_, _ = fmt.Fprintf(w, format, args...)
	}

	p(" -output: %s\n", c.Output)
	p(" -image_workers: %d\n", c.ImageWorkers)
	p(" -chapter_workers: %d\n", c.ChapterWorkers)
	if c.KeepFolders {
		p(" -keep_folders: %t\n", c.KeepFolders)
	}
	if c.Debug {
		p(" -debug: %t\n", c.Debug)
	}
	if c.DefaultURL != "" {
		p(" -url: %s\n", c.DefaultURL)
	}
	if c.DefaultRange != "" {
		p(" -range: %s\n", c.DefaultRange)
	}
	if c.DefaultExcludeRange != "" {
		p(" -exclude_range: %s\n", c.DefaultExcludeRange)
	}
	if c.DefaultList != "" {
		p(" -list: %s\n", c.DefaultList)
	}
	if c.DefaultExcludeList != "" {
		p(" -exclude_list: %s\n", c.DefaultExcludeList)
	}
	if c.Cookie != "" {
		p(" -cookie: (set)\n")
	}
	if c.CookieFile != "" {
		p(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.CloudflareBypass {
		p(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.RateLimit > 0 {
		p(" -rate_limit: %.1f/s\n", c.RateLimit)
	}
	if c.SkipBroken {
		p(" -skip_broken: %t\n", c.SkipBroken)
	}
	if c.Archive != "" {
		p(" -archive: %s\n", c.Archive)
	}
	if len(c.AllowExt) > 0 {
		p(" -allow_ext: %s\n", strings.Join(c.AllowExt, ", "))
	}
}
