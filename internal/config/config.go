// Package config defines the data structures related to configuration and
// includes functions for loading and sanitizing the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/truenorth-fi/mortgage-affordability/pkg/mortgage"
)

// Configuration holds all configuration for mortgage-affordability.
type Configuration struct {
	Scenarios []Scenario    `yaml:"scenarios"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario names one mortgage parameter set to be calculated and compared.
type Scenario struct {
	Name     string          `yaml:"name"`
	Active   bool            `yaml:"active"`
	Mortgage mortgage.Inputs `yaml:"mortgage"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// io.Reader, e.g. an uploaded request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveScenarios returns the scenarios flagged active.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// SanitizeScenarios normalizes every scenario's inputs in place and returns
// the accumulated warnings keyed by scenario name.
func (conf *Configuration) SanitizeScenarios() []string {
	var warnings []string
	for i := range conf.Scenarios {
		for _, warning := range SanitizeInputs(&conf.Scenarios[i].Mortgage) {
			warnings = append(warnings, fmt.Sprintf("scenario '%s': %s", conf.Scenarios[i].Name, warning))
		}
	}
	return warnings
}
