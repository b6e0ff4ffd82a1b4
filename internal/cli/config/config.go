// Package config loads dbfcp settings from defaults, an optional config
// file, DBFCP_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Ulysses-Xu/go-dbfcp"
)

const (
	EnvPrefix         = "DBFCP"
	DefaultConfigName = "dbfcp"

	FormatTable = "table"
	FormatJSON  = "json"
)

// Options is the merged configuration of one dbfcp run.
type Options struct {
	Strict    bool     `mapstructure:"strict"`
	Types     []string `mapstructure:"types"`
	Format    string   `mapstructure:"format"`
	Verbose   bool     `mapstructure:"verbose"`
	LogFormat string   `mapstructure:"log-format"`

	// Derived by Load.
	ConfigFilePath string             `mapstructure:"-"`
	EnabledTypes   []godbfcp.FileType `mapstructure:"-"`
}

// LogLevel returns the slog level name for the run.
func (o Options) LogLevel() string {
	if o.Verbose {
		return "debug"
	}
	return "info"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("strict", false)
	v.SetDefault("types", []string{})
	v.SetDefault("format", FormatTable)
	v.SetDefault("verbose", false)
	v.SetDefault("log-format", "text")
}

// Load merges all configuration sources. cfgFile may be empty, in which
// case ./dbfcp.yaml and $HOME/.config/dbfcp/dbfcp.yaml are tried and a
// missing file is not an error.
func Load(cfgFile string, flags *pflag.FlagSet) (Options, error) {
	var opts Options
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return opts, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"strict", "types", "format", "verbose", "log-format"} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return opts, fmt.Errorf("error binding flag '--%s': %w", key, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&opts); err != nil {
		return opts, fmt.Errorf("error unmarshalling configuration: %w", err)
	}
	if err := opts.validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (o *Options) validate() error {
	o.Format = strings.ToLower(o.Format)
	if !slices.Contains([]string{FormatTable, FormatJSON}, o.Format) {
		return fmt.Errorf("invalid format %q: must be %q or %q", o.Format, FormatTable, FormatJSON)
	}
	o.LogFormat = strings.ToLower(o.LogFormat)
	if o.LogFormat != "text" && o.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be \"text\" or \"json\"", o.LogFormat)
	}

	o.EnabledTypes = nil
	for _, s := range o.Types {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			ft, err := godbfcp.ParseFileType(name)
			if err != nil {
				return err
			}
			if !slices.Contains(o.EnabledTypes, ft) {
				o.EnabledTypes = append(o.EnabledTypes, ft)
			}
		}
	}
	return nil
}
