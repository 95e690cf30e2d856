package logger

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ncobase/cookies/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer masks secrets in log fields
type Desensitizer struct {
	config   *config.Desensitization
	patterns []*regexp.Regexp
	mask     string
}

// NewDesensitizer creates a new desensitizer instance.
// Custom patterns that do not compile are reported as an error.
func NewDesensitizer(cfg *config.Desensitization) (*Desensitizer, error) {
	d := &Desensitizer{
		config: cfg,
		mask:   strings.Repeat(cfg.MaskChar, cfg.FixedMaskLength),
	}

	for _, pattern := range cfg.CustomPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid desensitization pattern %q: %w", pattern, err)
		}
		d.patterns = append(d.patterns, re)
	}
	return d, nil
}

// DesensitizeFields returns a copy of fields with sensitive data masked
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if !d.config.Enabled {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		result[key] = d.desensitizeValue(key, value, 0)
	}
	return result
}

// DesensitizeString applies the custom patterns to str
func (d *Desensitizer) DesensitizeString(str string) string {
	if !d.config.Enabled || str == "" {
		return str
	}
	for _, pattern := range d.patterns {
		str = pattern.ReplaceAllString(str, d.mask)
	}
	return str
}

func (d *Desensitizer) desensitizeValue(key string, value any, depth int) any {
	if value == nil || depth > 10 {
		return value
	}

	if d.isSensitiveField(key) {
		return d.maskValue(value)
	}

	switch v := value.(type) {
	case string:
		return d.DesensitizeString(v)
	case []string:
		out := make([]string, len(v))
		for i, s := range v {
			out[i] = d.DesensitizeString(s)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, inner := range v {
			out[k] = d.desensitizeValue(k, inner, depth+1)
		}
		return out
	case logrus.Fields:
		out := make(logrus.Fields, len(v))
		for k, inner := range v {
			out[k] = d.desensitizeValue(k, inner, depth+1)
		}
		return out
	default:
		return value
	}
}

// isSensitiveField checks if field name contains sensitive keywords
func (d *Desensitizer) isSensitiveField(fieldName string) bool {
	if fieldName == "" {
		return false
	}

	lowerName := strings.ToLower(fieldName)
	for _, sensitiveField := range d.config.SensitiveFields {
		lowerSensitiveField := strings.ToLower(sensitiveField)
		if d.config.ExactFieldMatch {
			if lowerName == lowerSensitiveField {
				return true
			}
		} else if strings.Contains(lowerName, lowerSensitiveField) {
			return true
		}
	}
	return false
}

// maskValue replaces a sensitive value with a fixed-length mask, so neither
// content nor length leaks
func (d *Desensitizer) maskValue(value any) any {
	switch v := value.(type) {
	case string:
		if v == "" {
			return v
		}
	case []byte:
		if len(v) == 0 {
			return ""
		}
	}
	return d.mask
}
