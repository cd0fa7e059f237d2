package logger

import (
	"job-tracker/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds the process logger. Level "debug" switches to zap's development
// preset; any other unparseable level stays at info.
func New(cfg *Config) (*zap.Logger, error) {
	return buildConfig(cfg).Build()
}

func buildConfig(cfg *Config) zap.Config {
	zc := zap.NewProductionConfig()
	if cfg.Level == "debug" {
		zc = zap.NewDevelopmentConfig()
	} else if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	zc.Encoding = FormatJSON
	if cfg.Format == FormatConsole {
		zc.Encoding = FormatConsole
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}

	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.MessageKey = "message"
	return zc
}

// WithRayID tags l with the request's RayID, if the rayid middleware set one.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id := rayid.FromCtx(c); id != "" {
		return l.With(zap.String("ray_id", id))
	}
	return l
}
