package app

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env                  string        `mapstructure:"env" validate:"oneof=dev staging prod"`
	LogLevel             string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat            string        `mapstructure:"log_format" validate:"oneof=json text"`
	Port                 int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	ShutdownGracePeriod  time.Duration `mapstructure:"shutdown_grace_period" validate:"gt=0"`
	HousekeepingInterval time.Duration `mapstructure:"housekeeping_interval" validate:"gt=0"`

	DatabaseFile string `mapstructure:"tasks_database_file" validate:"required"`
	PepperFile   string `mapstructure:"tasks_pepper_file" validate:"required"`
	UploadRoot   string `mapstructure:"tasks_upload_root" validate:"required"`

	AccessTokenTTL  time.Duration `mapstructure:"tasks_access_token_ttl" validate:"gt=0"`
	RefreshTokenTTL time.Duration `mapstructure:"tasks_refresh_token_ttl" validate:"gtfield=AccessTokenTTL"`
	LoginDelay      time.Duration `mapstructure:"tasks_login_delay" validate:"gte=0"`
	MaxUploadBytes  int64         `mapstructure:"tasks_max_upload_bytes" validate:"gt=0"`
	PageSize        int           `mapstructure:"tasks_page_size" validate:"gt=0"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("port", 8080)
	v.SetDefault("shutdown_grace_period", 10*time.Second)
	v.SetDefault("housekeeping_interval", time.Hour)

	v.SetDefault("tasks_database_file", "tasks.db")
	v.SetDefault("tasks_pepper_file", "pepper")
	v.SetDefault("tasks_upload_root", "taskimages")

	v.SetDefault("tasks_access_token_ttl", service.DefaultAccessTTL)
	v.SetDefault("tasks_refresh_token_ttl", service.DefaultRefreshTTL)
	v.SetDefault("tasks_login_delay", service.DefaultLoginDelay)
	v.SetDefault("tasks_max_upload_bytes", int64(domain.MaxImageBytes))
	v.SetDefault("tasks_page_size", service.DefaultPageSize)
}

// LoadConfig reads the configuration from the environment. Every key is the
// upper-cased mapstructure tag, e.g. TASKS_DATABASE_FILE.
func LoadConfig() (Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
