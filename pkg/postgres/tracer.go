package postgres

import (
	"context"
	"strings"

	"github.com/bytebury/ctrunner/pkg/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewTracer logs pgx activity at or above level through l. It returns nil
// for "none" or an unknown level so statement logging stays off by default.
func NewTracer(l *logger.Logger, level string) *tracelog.TraceLog {
	tlLevel, err := tracelog.LogLevelFromString(strings.ToLower(level))
	if err != nil || tlLevel == tracelog.LogLevelNone {
		return nil
	}

	return &tracelog.TraceLog{
		Logger:   newPgxLogger(*l.Zerolog()),
		LogLevel: tlLevel,
	}
}

type pgxLogger struct {
	logger zerolog.Logger
}

func newPgxLogger(l zerolog.Logger) *pgxLogger {
	return &pgxLogger{logger: l.With().Str("component", "pgx").Logger()}
}

func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event

	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info().Str("pgx_log_level", level.String())
	}

	if sql, ok := data["sql"].(string); ok {
		event = event.Str("sql", sql)
		delete(data, "sql")
	}

	if len(data) > 0 {
		event = event.Fields(data)
	}

	event.Msg(msg)
}
