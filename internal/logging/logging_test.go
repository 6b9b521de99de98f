package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	quiet := NewLogger(false)
	if quiet == nil {
		t.Fatal("NewLogger(false) returned nil")
	}
	if quiet.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("quiet logger enables debug level")
	}

	verbose := NewLogger(true)
	if !verbose.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger drops debug level")
	}
}
