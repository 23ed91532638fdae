// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned (wrapped) when a configuration value fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults applied before a YAML file is read.
const (
	DefaultBusWaitTime = 6
	DefaultBusVelocity = 40.0
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

var validate = validator.New()

// RoutingParameters controls edge weights of the routing graph.
type RoutingParameters struct {
	// BusWaitTime is the boarding wait in minutes.
	BusWaitTime int `yaml:"bus_wait_time" json:"bus_wait_time" validate:"gt=0"`
	// BusVelocity is the bus speed in km/h.
	BusVelocity float64 `yaml:"bus_velocity" json:"bus_velocity" validate:"gt=0"`
}

// Validate checks that both parameters are strictly positive.
func (p RoutingParameters) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: routing: %v", ErrInvalidConfig, err)
	}

	return nil
}

// MetersPerMinute converts BusVelocity from km/h.
func (p RoutingParameters) MetersPerMinute() float64 {
	return p.BusVelocity * 1000 / 60
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Routing RoutingParameters `yaml:"routing"`
	Log     LogConfig         `yaml:"log"`
}

// Validate checks every section of the configuration.
func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Default returns the configuration used when no file is supplied.
func Default() AppConfig {
	return AppConfig{
		Routing: RoutingParameters{
			BusWaitTime: DefaultBusWaitTime,
			BusVelocity: DefaultBusVelocity,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
