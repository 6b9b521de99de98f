package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds CLI defaults. Values come from a subshift.yaml file or
// SUBSHIFT_* environment variables; flags override both.
type Config struct {
	Format  string // default output format when none can be inferred
	Delta   string // default time shift
	Verbose bool
}

// Load reads configuration from path. With an empty path it searches
// the working directory and $HOME/.config/subshift, and a missing file
// is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("format", "vtt")
	v.SetDefault("delta", "0")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("SUBSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("subshift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/subshift")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return &Config{
		Format:  v.GetString("format"),
		Delta:   v.GetString("delta"),
		Verbose: v.GetBool("verbose"),
	}, nil
}
