package config

import "github.com/spf13/viper"

// Desensitization holds desensitization settings
type Desensitization struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	SensitiveFields []string `json:"sensitive_fields" yaml:"sensitive_fields"`
	CustomPatterns  []string `json:"custom_patterns" yaml:"custom_patterns"`
	MaskChar        string   `json:"mask_char" yaml:"mask_char"`
	FixedMaskLength int      `json:"fixed_mask_length" yaml:"fixed_mask_length"`
	ExactFieldMatch bool     `json:"exact_field_match" yaml:"exact_field_match"`
}

// Fields that carry secrets or signed material
var defaultSensitiveFields = []string{
	"secret", "signature", "password", "token", "cookie_value",
}

const (
	defaultMaskChar        = "*"
	defaultFixedMaskLength = 6
)

func defaultDesensitization() *Desensitization {
	return &Desensitization{
		Enabled:         true,
		SensitiveFields: defaultSensitiveFields,
		MaskChar:        defaultMaskChar,
		FixedMaskLength: defaultFixedMaskLength,
	}
}

// getDesensitizationConfigs reads and returns desensitization configuration
func getDesensitizationConfigs(v *viper.Viper) *Desensitization {
	if !v.IsSet("logger.desensitization") {
		return defaultDesensitization()
	}

	config := &Desensitization{
		Enabled:         v.GetBool("logger.desensitization.enabled"),
		SensitiveFields: v.GetStringSlice("logger.desensitization.sensitive_fields"),
		CustomPatterns:  v.GetStringSlice("logger.desensitization.custom_patterns"),
		MaskChar:        v.GetString("logger.desensitization.mask_char"),
		FixedMaskLength: v.GetInt("logger.desensitization.fixed_mask_length"),
		ExactFieldMatch: v.GetBool("logger.desensitization.exact_field_match"),
	}

	// Apply defaults for missing values
	if !v.IsSet("logger.desensitization.enabled") {
		config.Enabled = true
	}
	if len(config.SensitiveFields) == 0 {
		config.SensitiveFields = defaultSensitiveFields
	}
	if config.MaskChar == "" {
		config.MaskChar = defaultMaskChar
	}
	if config.FixedMaskLength <= 0 {
		config.FixedMaskLength = defaultFixedMaskLength
	}

	return config
}
