package log

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl.Level())

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestInitLog(t *testing.T) {
	t.Parallel()
	l := InitLog(zap.NewAtomicLevelAt(zapcore.WarnLevel))
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestLogger_LevelByStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		method string
		path   string
		status int
		want   string
	}{
		{"ok", http.MethodGet, "/", http.StatusOK, "info"},
		{"client error", http.MethodPost, "/", http.StatusBadRequest, "warn"},
		{"server error", http.MethodGet, "/", http.StatusInternalServerError, "error"},
		{"health", http.MethodGet, "/health", http.StatusOK, "debug"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			mw := Logger(NewWriterLogger(&buf, zapcore.DebugLevel), "test")
			h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))

			assert.Contains(t, buf.String(), "\t"+tt.want+"\t")
			assert.Contains(t, buf.String(), "HTTP request completed: "+tt.path)
		})
	}
}

func TestLogger_NilPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { Logger(nil, "x") })
}
