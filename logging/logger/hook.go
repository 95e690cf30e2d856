package logger

import (
	"github.com/sirupsen/logrus"
)

// desensitizeHook masks sensitive fields before an entry is written
type desensitizeHook struct {
	desensitizer *Desensitizer
}

func (h *desensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *desensitizeHook) Fire(entry *logrus.Entry) error {
	entry.Data = h.desensitizer.DesensitizeFields(entry.Data)
	entry.Message = h.desensitizer.DesensitizeString(entry.Message)
	return nil
}

// hookExists checks if hook already exists
func (l *Logger) hookExists(hook logrus.Hook) bool {
	for _, h := range l.Hooks {
		for _, existingHook := range h {
			if existingHook == hook {
				return true
			}
		}
	}
	return false
}
