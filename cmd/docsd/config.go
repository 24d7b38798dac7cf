package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cvefinder/docs/pkg/logger"
	"github.com/cvefinder/docs/pkg/page"
	"github.com/cvefinder/docs/views"
)

// Environment variables read at startup.
const (
	envContentRoot = "DOCS_CONTENT_ROOT"
	envSentryDSN   = "SENTRY_DSN"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigInvalid  = errors.New("invalid config")
)

// Config is the server configuration.
type Config struct {
	Addr            string              `yaml:"addr"`
	ContentRoot     string              `yaml:"content_root"`
	DefaultPage     string              `yaml:"default_page"`
	CatalogFile     string              `yaml:"catalog_file"`
	LogLevel        string              `yaml:"log_level"`
	ShutdownTimeout time.Duration       `yaml:"shutdown_timeout"`
	Site            views.Site          `yaml:"site"`
	Sentry          logger.SentryConfig `yaml:"sentry"`
}

func defaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ContentRoot:     "content",
		DefaultPage:     page.DefaultPage,
		LogLevel:        "info",
		ShutdownTimeout: 30 * time.Second,
		Site:            views.DefaultSite(),
	}
}

type flags struct {
	config      string
	addr        string
	contentRoot string
	defaultPage string
	logLevel    string
}

func parseFlags(args []string) (*flag.FlagSet, *flags, error) {
	f := &flags{}
	fs := flag.NewFlagSet("docsd", flag.ContinueOnError)
	fs.StringVarP(&f.config, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&f.addr, "addr", "", "listen address (default \":8080\")")
	fs.StringVar(&f.contentRoot, "content-root", "", "directory holding the markdown pages (env "+envContentRoot+")")
	fs.StringVar(&f.defaultPage, "default-page", "", "page served for unknown identifiers (default \""+page.DefaultPage+"\")")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return fs, nil, err
	}
	return fs, f, nil
}

// loadConfig builds the configuration with precedence
// flag > environment > file > default.
func loadConfig(args []string, getenv func(string) string) (Config, error) {
	fs, f, err := parseFlags(args)
	if err != nil {
		return Config{}, err
	}

	cfg := defaultConfig()
	if f.config != "" {
		if err := readConfigFile(f.config, &cfg); err != nil {
			return Config{}, err
		}
	}

	if v := getenv(envContentRoot); v != "" {
		cfg.ContentRoot = v
	}
	if v := getenv(envSentryDSN); v != "" {
		cfg.Sentry.DSN = v
	}

	if fs.Changed("addr") {
		cfg.Addr = f.addr
	}
	if fs.Changed("content-root") {
		cfg.ContentRoot = f.contentRoot
	}
	if fs.Changed("default-page") {
		cfg.DefaultPage = f.defaultPage
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	cfg.Site = cfg.Site.WithDefaults()
	return cfg, cfg.validate()
}

func readConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrConfigInvalid)
	}
	if c.ContentRoot == "" {
		return fmt.Errorf("%w: content root is empty", ErrConfigInvalid)
	}
	if page.Sanitize(c.DefaultPage) == "" {
		return fmt.Errorf("%w: default page %q", ErrConfigInvalid, c.DefaultPage)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrConfigInvalid)
	}
	return nil
}
