package pubsub

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// WatermillLogger routes watermill's logs through the application logger.
// Trace is folded into Debug.
type WatermillLogger struct {
	log logger.Interface
}

func NewWatermillLogger(log logger.Interface) watermill.LoggerAdapter {
	return &WatermillLogger{log: log.Named("watermill")}
}

func (l *WatermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.log.Errorw(msg, append(flatten(fields), "error", err)...)
}

func (l *WatermillLogger) Info(msg string, fields watermill.LogFields) {
	l.log.Infow(msg, flatten(fields)...)
}

func (l *WatermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.log.Debugw(msg, flatten(fields)...)
}

func (l *WatermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.log.Debugw(msg, flatten(fields)...)
}

func (l *WatermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &WatermillLogger{log: l.log.With(flatten(fields)...)}
}

func flatten(fields watermill.LogFields) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}
