package database

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm/logger"
)

// zerologWriter sends gorm's log lines to the global zerolog logger.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	log.Warn().Str("component", "gorm").Msgf(strings.TrimSpace(format), args...)
}

// newGormLogger reports slow queries and failures. A lookup that finds no row
// is a normal outcome for the repositories and is not logged.
func newGormLogger() logger.Interface {
	return logger.New(zerologWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
