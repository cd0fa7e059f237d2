package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"job-tracker/core/database"
	"job-tracker/core/logger"
	"job-tracker/core/server"
	"job-tracker/core/storage"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the tracker.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads <dir>/.env (when present), overlays the process environment
// and validates the result. Keys map as SECTION_KEY, e.g. DATABASE_NAME.
func LoadConfig(dir string) (*Config, error) {
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	registerDefaults(v, reflect.TypeOf(Config{}), "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings the tracker cannot start with.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.Database,
		validation.Field(&c.Database.Driver, validation.Required, validation.In(database.DriverSQLite, database.DriverMySQL)),
		validation.Field(&c.Database.Name, validation.Required),
	); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := validation.ValidateStruct(&c.Log,
		validation.Field(&c.Log.Format, validation.In("json", "console")),
	); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := validation.ValidateStruct(&c.Storage,
		validation.Field(&c.Storage.Bucket, validation.When(c.Storage.Enabled, validation.Required)),
		validation.Field(&c.Storage.Endpoint, validation.When(c.Storage.Enabled, validation.Required)),
	); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// registerDefaults walks the mapstructure tree and registers every leaf key
// with its `default` tag. Registration is what lets AutomaticEnv see the key.
func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for _, field := range reflect.VisibleFields(t) {
		name := field.Tag.Get("mapstructure")
		if name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
