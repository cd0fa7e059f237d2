package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		debug  bool
		warnOn bool
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}, true, true},
		{"Info json", Config{Level: "info", Format: "json"}, false, true},
		{"Error level", Config{Level: "error", Format: "json"}, false, false},
		{"Unknown level falls back to info", Config{Level: "loud"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.warnOn, l.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "abc-123")
		WithRayID(base, c).Info("tagged")
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc-123", logs.All()[0].ContextMap()["ray_id"])
}

func TestBuildConfig_Encoding(t *testing.T) {
	assert.Equal(t, FormatConsole, buildConfig(&Config{Format: FormatConsole}).Encoding)
	assert.Equal(t, FormatJSON, buildConfig(&Config{Format: "xml"}).Encoding)
	assert.Equal(t, "message", buildConfig(&Config{}).EncoderConfig.MessageKey)
}
