package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		env, level string
		wantErr    bool
		enabled    zapcore.Level
	}{
		{"prod", "", false, zapcore.InfoLevel},
		{"local", "warn", false, zapcore.WarnLevel},
		{"dev", "debug", false, zapcore.DebugLevel},
		{"staging", "", true, 0},
		{"prod", "loud", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.env+"/"+tt.level, func(t *testing.T) {
			l, err := NewLogger(tt.env, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !l.Core().Enabled(tt.enabled) {
				t.Errorf("level %s not enabled", tt.enabled)
			}
			if tt.enabled > zapcore.DebugLevel && l.Core().Enabled(tt.enabled-1) {
				t.Errorf("level %s unexpectedly enabled", tt.enabled-1)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	reqLog := zap.NewExample()
	fallback := zap.NewNop()

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Error("expected fallback for empty context")
	}
	if got := FromContext(context.Background(), nil); got == nil {
		t.Error("expected non-nil nop logger")
	}
	ctx := ContextWithLogger(context.Background(), reqLog)
	if got := FromContext(ctx, fallback); got != reqLog {
		t.Error("expected request logger from context")
	}
}
