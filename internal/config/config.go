package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfryer1193/gallery/gallery/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "./config.yaml"
	defaultListenAddr = ":3000"
	defaultRoot       = "images"
)

type Config struct {
	ListenAddr string        `yaml:"listen_addr"`
	Mode       string        `yaml:"mode"`
	Log        LogConfig     `yaml:"log"`
	Gallery    GalleryConfig `yaml:"gallery"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// GalleryConfig describes where each size variant lives on disk.
type GalleryConfig struct {
	// Root is the parent of variant directories that set no Dir of their own.
	Root          string          `yaml:"root"`
	Variants      []VariantConfig `yaml:"variants"`
	UnknownPolicy string          `yaml:"unknown_policy"`
	Extensions    []string        `yaml:"extensions"`
}

type VariantConfig struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	variants := make([]VariantConfig, 0, len(domain.DefaultVariants))
	for _, v := range domain.DefaultVariants {
		variants = append(variants, VariantConfig{Name: string(v)})
	}

	return &Config{
		ListenAddr: defaultListenAddr,
		Mode:       "release",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Gallery: GalleryConfig{
			Root:          defaultRoot,
			Variants:      variants,
			UnknownPolicy: string(domain.FallbackToCanonical),
			Extensions:    []string{"jpg", "png", "webp"},
		},
	}
}

// Load reads .env, then the YAML file at CONFIG_PATH (optional), then applies
// environment overrides on top of the defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := getenv("CONFIG_PATH", defaultConfigPath)
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late, at startup.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}

	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid mode %q (want debug, release or test)", c.Mode)
	}

	if len(c.Gallery.Extensions) == 0 {
		return fmt.Errorf("gallery.extensions cannot be empty")
	}

	return nil
}

// LoadFile merges the YAML file at path over the defaults. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("GALLERY_ROOT"); v != "" {
		c.Gallery.Root = v
	}
	if v := os.Getenv("UNKNOWN_SIZE_POLICY"); v != "" {
		c.Gallery.UnknownPolicy = v
	}
	if v := os.Getenv("IMAGE_EXTENSIONS"); v != "" {
		c.Gallery.Extensions = splitComma(v)
	}
}

// BuildVariants turns the gallery section into the immutable variant mapping.
func (g GalleryConfig) BuildVariants() (*domain.Variants, error) {
	policy, err := domain.ParseUnknownVariantPolicy(g.UnknownPolicy)
	if err != nil {
		return nil, err
	}

	roots := make([]domain.VariantRoot, 0, len(g.Variants))
	for _, v := range g.Variants {
		dir := v.Dir
		if dir == "" {
			if g.Root == "" {
				return nil, fmt.Errorf("variant %q has no dir and gallery root is empty", v.Name)
			}
			dir = filepath.Join(g.Root, v.Name)
		}
		roots = append(roots, domain.VariantRoot{
			Variant: domain.SizeVariant(v.Name),
			Dir:     dir,
		})
	}

	return domain.NewVariants(roots, policy)
}

func splitComma(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
