package internal

import "testing"

func TestNewDefaultLogger_Level(t *testing.T) {
	tests := []struct {
		env  string
		want LogLevel
	}{
		{"", LogLevelInfo},
		{"ERROR", LogLevelError},
		{"WARN", LogLevelWarn},
		{"DEBUG", LogLevelDebug},
		{"VERBOSE", LogLevelInfo}, // unknown values fall back
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := NewDefaultLogger(); got.level != tt.want {
			t.Errorf("LOG_LEVEL=%q: level = %d, want %d", tt.env, got.level, tt.want)
		}
	}
}
