package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talx-hub/rez-booking/internal/model"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelInfo)
	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	wrongType := context.WithValue(context.Background(), model.KeyContextLogger, "not a logger")
	assert.Equal(t, slog.Default(), FromContext(wrongType))
}

func TestFromContextOr(t *testing.T) {
	var fallbackBuf, reqBuf bytes.Buffer
	fallback := NewWithWriter(&fallbackBuf, slog.LevelInfo)
	reqLog := NewWithWriter(&reqBuf, slog.LevelInfo)

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{"empty context", context.Background(), fallback},
		{"request logger", WithContext(context.Background(), reqLog), reqLog},
		{"nil logger", WithContext(context.Background(), nil), fallback},
		{"wrong type",
			context.WithValue(context.Background(), model.KeyContextLogger, 42), fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, FromContextOr(tt.ctx, fallback))
		})
	}
}
