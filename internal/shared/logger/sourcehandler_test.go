package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceThresholdHandler(t *testing.T) {
	tests := []struct {
		name       string
		minLevel   slog.Level
		logAt      slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelWarn, slog.LevelInfo, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelWarn, slog.LevelError, true},
		{"info with debug threshold", slog.LevelDebug, slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceThresholdHandler(base, tt.minLevel))

			log.Log(context.Background(), tt.logAt, "seat locked", "ticket_id", "t-1")

			assert.Equal(t, tt.wantSource, strings.Contains(buf.String(), "source="), buf.String())
		})
	}
}

func TestSourceThresholdHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewSourceThresholdHandler(base, slog.LevelError)).
		With("component", "checkout").
		WithGroup("order")

	log.Error("settlement failed", "id", "o-1")

	out := buf.String()
	assert.Contains(t, out, "component=checkout")
	assert.Contains(t, out, "order.id=o-1")
	assert.Contains(t, out, "source=")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Named("x").With("a", 1).Infow("ignored", "k", "v")
	})
}
