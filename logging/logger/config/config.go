package config

import (
	"github.com/spf13/viper"
)

const (
	// DefaultLevel is logrus.InfoLevel.
	DefaultLevel  = 4
	DefaultFormat = "text"
	DefaultOutput = "stderr"
)

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level" validate:"gte=0,lte=6"`
	Format          string           `json:"format" yaml:"format" validate:"omitempty,oneof=json text"`
	Output          string           `json:"output" yaml:"output" validate:"omitempty,oneof=stdout stderr file"`
	OutputFile      string           `json:"output_file" yaml:"output_file" validate:"required_if=Output file"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// Default returns the configuration used when the logger section is absent.
func Default() *Config {
	return &Config{
		Level:           DefaultLevel,
		Format:          DefaultFormat,
		Output:          DefaultOutput,
		Desensitization: defaultDesensitization(),
	}
}

// GetConfig returns the logger configuration. Keys that are not set keep
// their defaults.
func GetConfig(v *viper.Viper) *Config {
	cfg := Default()
	if v.IsSet("logger.level") {
		cfg.Level = v.GetInt("logger.level")
	}
	if format := v.GetString("logger.format"); format != "" {
		cfg.Format = format
	}
	if output := v.GetString("logger.output"); output != "" {
		cfg.Output = output
	}
	cfg.OutputFile = v.GetString("logger.output_file")
	cfg.Desensitization = getDesensitizationConfigs(v)
	return cfg
}
