package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	floatkiterrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. FLOATKIT_TOOLTIP_DELAY.
const EnvPrefix = "FLOATKIT"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Defaults used when neither a file nor the environment sets a key.
var defaults = map[string]any{
	"theme":             "default",
	"log.level":         "info",
	"log.human":         false,
	"select.offset":     1,
	"select.placement":  "bottom-start",
	"tooltip.offset":    8,
	"tooltip.padding":   8,
	"tooltip.delay":     "200ms",
	"tooltip.placement": "top",
	"toast.duration":    "5s",
	"toast.max_visible": 5,
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	cfg, err := load(defaultViper(), "")
	if err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// Load reads defaults, then the YAML file at path (or FLOATKIT_CONFIG, or
// $XDG_CONFIG_HOME/floatkit/config.yaml when present), then FLOATKIT_*
// environment variables. The merged result is validated.
func Load(path string) (Config, error) {
	v := newViper()

	explicit := path
	if explicit == "" {
		explicit = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(configHome(), "floatkit"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, floatkiterrors.NewParseError(explicit, extractLine(err), err)
		}
	}

	return load(v, v.ConfigFileUsed())
}

func defaultViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigType("yaml")
	return v
}

func newViper() *viper.Viper {
	v := defaultViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func load(v *viper.Viper, source string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, floatkiterrors.NewParseError(source, 0, fmt.Errorf("decode config: %w", err))
	}
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// Marshal renders cfg as two-space indented YAML with durations in their
// human form.
func Marshal(cfg Config) ([]byte, error) {
	type tooltipView struct {
		Offset    int    `yaml:"offset"`
		Padding   int    `yaml:"padding"`
		Delay     string `yaml:"delay"`
		Placement string `yaml:"placement"`
	}
	type toastView struct {
		Duration   string `yaml:"duration"`
		MaxVisible int    `yaml:"max_visible"`
	}
	view := struct {
		Theme   string       `yaml:"theme"`
		Log     LogConfig    `yaml:"log"`
		Select  SelectConfig `yaml:"select"`
		Tooltip tooltipView  `yaml:"tooltip"`
		Toast   toastView    `yaml:"toast"`
	}{
		Theme:  cfg.Theme,
		Log:    cfg.Log,
		Select: cfg.Select,
		Tooltip: tooltipView{
			Offset:    cfg.Tooltip.Offset,
			Padding:   cfg.Tooltip.Padding,
			Delay:     cfg.Tooltip.Delay.String(),
			Placement: cfg.Tooltip.Placement,
		},
		Toast: toastView{
			Duration:   cfg.Toast.Duration.String(),
			MaxVisible: cfg.Toast.MaxVisible,
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
