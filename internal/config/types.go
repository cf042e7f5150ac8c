package config

import (
	"time"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

// Config is the effective floatkit configuration.
type Config struct {
	Theme   string        `mapstructure:"theme" yaml:"theme" validate:"required,theme"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Select  SelectConfig  `mapstructure:"select" yaml:"select"`
	Tooltip TooltipConfig `mapstructure:"tooltip" yaml:"tooltip"`
	Toast   ToastConfig   `mapstructure:"toast" yaml:"toast"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Human bool   `mapstructure:"human" yaml:"human"`
}

// SelectConfig positions the select listbox.
type SelectConfig struct {
	Offset    int    `mapstructure:"offset" yaml:"offset" validate:"gte=0"`
	Placement string `mapstructure:"placement" yaml:"placement" validate:"placement"`
}

// TooltipConfig controls tooltip timing and placement.
type TooltipConfig struct {
	Offset    int           `mapstructure:"offset" yaml:"offset" validate:"gte=0"`
	Padding   int           `mapstructure:"padding" yaml:"padding" validate:"gte=0"`
	Delay     time.Duration `mapstructure:"delay" yaml:"delay" validate:"gte=0"`
	Placement string        `mapstructure:"placement" yaml:"placement" validate:"placement"`
}

// ToastConfig controls notification lifetime and stacking.
type ToastConfig struct {
	Duration   time.Duration `mapstructure:"duration" yaml:"duration" validate:"gt=0"`
	MaxVisible int           `mapstructure:"max_visible" yaml:"max_visible" validate:"gte=0"`
}

// LoggerOptions maps the log section onto logger options.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.Log.Level, HumanReadable: c.Log.Human}
}

// SelectPlacement returns the parsed select placement. Config is validated
// on load, so an unparsable value falls back to the default.
func (c Config) SelectPlacement() geometry.Placement {
	return placementOr(c.Select.Placement, geometry.BottomStart)
}

// TooltipPlacement returns the parsed tooltip placement.
func (c Config) TooltipPlacement() geometry.Placement {
	return placementOr(c.Tooltip.Placement, geometry.Top)
}

func placementOr(value string, fallback geometry.Placement) geometry.Placement {
	p, err := geometry.ParsePlacement(value)
	if err != nil {
		return fallback
	}
	return p
}
