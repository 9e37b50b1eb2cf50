package cliopt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nonibytes/filetag/filetag"
)

// EnvPrefix namespaces environment overrides, e.g. FILETAG_PG_DSN
const EnvPrefix = "FILETAG"

// GlobalOptions are resolved once at the CLI root from flags, environment and
// config file (in that order of precedence) and passed to subcommands.
//
// NOTE: This is a separate package to avoid import cycles between the root
// command router and per-command code.
type GlobalOptions struct {
	Backend        string `mapstructure:"backend"`
	DBPath         string `mapstructure:"db"`
	SQLiteDriver   string `mapstructure:"sqlite-driver"`
	PostgresDSN    string `mapstructure:"pg-dsn"`
	PostgresSchema string `mapstructure:"pg-schema"`
	SidecarDir     string `mapstructure:"sidecar-dir"`
	PageSize       int    `mapstructure:"page-size"`
	Format         string `mapstructure:"format"`
	LogLevel       string `mapstructure:"log-level"`
	Config         string `mapstructure:"config"`

	// Log is set by the root command after options are resolved
	Log *logrus.Logger `mapstructure:"-"`
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Backend:        "sqlite",
		DBPath:         DefaultDBPath(),
		SQLiteDriver:   "sqlite",
		PostgresSchema: "filetag",
		SidecarDir:     filetag.DefaultSidecarDir,
		PageSize:       filetag.DefaultPageSize,
		Format:         "pretty",
		LogLevel:       "warn",
	}
}

// DefaultDBPath is $XDG_DATA_HOME/filetag/filetag.db, or ./filetag.db when
// XDG_DATA_HOME is unset.
func DefaultDBPath() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "filetag", "filetag.db")
	}
	return "filetag.db"
}

func BindGlobalFlags(fs *pflag.FlagSet, g GlobalOptions) {
	fs.String("backend", g.Backend, "backend: sqlite|postgres")
	fs.String("db", g.DBPath, "sqlite database file")
	fs.String("sqlite-driver", g.SQLiteDriver, "sqlite driver: sqlite (pure Go) | sqlite3 (cgo)")
	fs.String("pg-dsn", g.PostgresDSN, "postgres DSN")
	fs.String("pg-schema", g.PostgresSchema, "postgres schema")
	fs.String("sidecar-dir", g.SidecarDir, "per-directory sidecar folder name")
	fs.Int("page-size", g.PageSize, "listing page size")
	fs.String("format", g.Format, "output: pretty|paths|json")
	fs.String("log-level", g.LogLevel, "log level: trace|debug|info|warn|error")
	fs.String("config", g.Config, "config file (default filetag.yaml in . or ~/.config/filetag)")
}

// Parse resolves global options from argv and returns the remaining
// arguments, starting at the command name.
func Parse(argv []string) (GlobalOptions, []string, error) {
	defaults := DefaultGlobalOptions()

	fs := pflag.NewFlagSet("filetag", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.SetOutput(os.Stderr)
	BindGlobalFlags(fs, defaults)
	if err := fs.Parse(argv); err != nil {
		return GlobalOptions{}, nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return GlobalOptions{}, nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfig(v); err != nil {
		return GlobalOptions{}, nil, err
	}

	var g GlobalOptions
	if err := v.Unmarshal(&g); err != nil {
		return GlobalOptions{}, nil, fmt.Errorf("decode options: %w", err)
	}
	if err := g.Validate(); err != nil {
		return GlobalOptions{}, nil, err
	}
	return g, fs.Args(), nil
}

func readConfig(v *viper.Viper) error {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName("filetag")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "filetag"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func (g GlobalOptions) Validate() error {
	switch g.Backend {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unknown backend %q", g.Backend)
	}
	switch g.SQLiteDriver {
	case "sqlite", "sqlite3":
	default:
		return fmt.Errorf("unknown sqlite driver %q", g.SQLiteDriver)
	}
	switch g.Format {
	case "pretty", "paths", "json":
	default:
		return fmt.Errorf("unknown format %q", g.Format)
	}
	if _, err := logrus.ParseLevel(g.LogLevel); err != nil {
		return err
	}
	if g.Backend == "postgres" && g.PostgresDSN == "" {
		return errors.New("--pg-dsn is required for the postgres backend")
	}
	if g.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", g.PageSize)
	}
	return nil
}
