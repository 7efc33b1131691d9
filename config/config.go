// Package config loads folio settings from a YAML file, FOLIO_ environment
// variables and built-in defaults, in that order of precedence after flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FOLIO_POSTS_BASE.
const EnvPrefix = "FOLIO"

// DefaultPostFiles is the post list used when no discovery is configured.
var DefaultPostFiles = []string{
	"getting-started-with-web-development.md",
	"why-i-love-javascript.md",
	"building-my-first-react-app.md",
	"MCP-The-Magic-Connector-Making-AI-Smarter-for-You.md",
}

type Config struct {
	Posts   PostsConfig   `mapstructure:"posts" validate:"required"`
	Site    SiteConfig    `mapstructure:"site" validate:"required"`
	Render  RenderConfig  `mapstructure:"render" validate:"required"`
	Fetch   FetchConfig   `mapstructure:"fetch" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Contact ContactConfig `mapstructure:"contact"`
	Serve   ServeConfig   `mapstructure:"serve"`
	Output  OutputConfig  `mapstructure:"output"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type PostsConfig struct {
	// Source is one of file, http or b2.
	Source string `mapstructure:"source" validate:"required,oneof=file http b2"`
	// Base is a directory for file, a URL for http and a key prefix for b2.
	Base string `mapstructure:"base"`
	// Files lists the posts to show, in order. Ignored when Discover is set.
	Files []string `mapstructure:"files" validate:"dive,required"`
	// Discover lists posts from the source instead of using Files.
	Discover bool     `mapstructure:"discover"`
	B2       B2Config `mapstructure:"b2"`
}

type B2Config struct {
	Bucket         string `mapstructure:"bucket"`
	KeyID          string `mapstructure:"keyId"`
	ApplicationKey string `mapstructure:"applicationKey"`
}

type SiteConfig struct {
	Dir         string `mapstructure:"dir" validate:"required"`
	ListPage    string `mapstructure:"listPage" validate:"required"`
	PostPage    string `mapstructure:"postPage" validate:"required"`
	TitleSuffix string `mapstructure:"titleSuffix"`
}

type RenderConfig struct {
	Engine string `mapstructure:"engine" validate:"required,oneof=simple goldmark"`
}

type FetchConfig struct {
	Concurrency int           `mapstructure:"concurrency" validate:"min=1"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=console json pretty"`
}

type ThemeConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type ContactConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type ServeConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
	// Watch reloads page shells when they change on disk.
	Watch bool `mapstructure:"watch"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("posts.source", "file")
	v.SetDefault("posts.base", "posts")
	v.SetDefault("posts.files", DefaultPostFiles)
	v.SetDefault("posts.discover", false)
	v.SetDefault("posts.b2.bucket", "")
	v.SetDefault("posts.b2.keyId", "")
	v.SetDefault("posts.b2.applicationKey", "")

	v.SetDefault("site.dir", ".")
	v.SetDefault("site.listPage", "blog.html")
	v.SetDefault("site.postPage", "blog-post.html")
	v.SetDefault("site.titleSuffix", "Your Name")

	v.SetDefault("render.engine", "simple")

	v.SetDefault("fetch.concurrency", 4)
	v.SetDefault("fetch.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("theme.file", ".folio/theme.yaml")
	v.SetDefault("contact.file", "contact.jsonl")
	v.SetDefault("serve.port", 8080)
	v.SetDefault("serve.watch", true)
	v.SetDefault("output.dir", "")
}

// Load reads the configuration. An explicit cfgFile must exist; otherwise
// ./folio.yaml is used when present and defaults apply when it is not.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and the requirements of the selected
// post source.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Posts.Source {
	case "http":
		if c.Posts.Base == "" {
			return errors.New("invalid config: posts.base must be set to a URL for the http source")
		}
	case "b2":
		if c.Posts.B2.Bucket == "" || c.Posts.B2.KeyID == "" || c.Posts.B2.ApplicationKey == "" {
			return errors.New("invalid config: posts.b2.bucket, keyId and applicationKey are required for the b2 source")
		}
	default:
		if c.Posts.Base == "" {
			return errors.New("invalid config: posts.base must be set to a directory for the file source")
		}
	}

	if !c.Posts.Discover && len(c.Posts.Files) == 0 {
		return errors.New("invalid config: posts.files is empty and posts.discover is off")
	}
	return nil
}
