// Package config loads iconswap's layered application configuration.
//
// Precedence, lowest to highest: built-in defaults, the optional
// iconswap.toml in the config directory, ICONSWAP_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/iconswap/pkg/constants"
)

// ConfigFileName is the optional user config file inside the config dir.
const ConfigFileName = "iconswap.toml"

// Config holds the resolved application configuration
type Config struct {
	// APIBase is the icon API endpoint, without trailing slash
	APIBase string `koanf:"api_base"`

	// IconColor is the URL-encoded fill color requested for every icon
	IconColor string `koanf:"icon_color"`

	// HTTPTimeout bounds a single icon fetch. It is deliberately generous:
	// transfers are small but sequential, and the API is rate limited.
	HTTPTimeout time.Duration `koanf:"http_timeout"`

	// IconsDir overrides the icon installation directory when set
	IconsDir string `koanf:"icons_dir"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"api_base":     constants.DefaultAPIBase,
		"icon_color":   constants.DefaultIconColor,
		"http_timeout": "120s",
		"icons_dir":    "",
	}
}

// Load resolves the configuration, merging the optional config file at
// configFilePath (skipped when absent) and the environment over defaults.
func Load(configFilePath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configFilePath != "" {
		if _, err := os.Stat(configFilePath); err == nil {
			if err := k.Load(file.Provider(configFilePath), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", configFilePath, err)
			}
		}
	}

	// ICONSWAP_API_BASE -> api_base, etc.
	if err := k.Load(env.Provider("ICONSWAP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ICONSWAP_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")

	return &cfg, nil
}
