// Package logger настраивает logrus для всего приложения.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options - параметры логгера из конфигурации
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json или text
	Output io.Writer
}

// New создает логгер с JSON (по умолчанию) или текстовым форматом
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	if strings.EqualFold(opts.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	if opts.Output != nil {
		log.SetOutput(opts.Output)
	} else {
		log.SetOutput(os.Stdout)
	}

	log.SetLevel(ParseLevel(opts.Level))
	return log
}

// ParseLevel переводит строку уровня в logrus.Level; неизвестное значение - info
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
