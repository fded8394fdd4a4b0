package internal

import (
	"fmt"
	"room-bot/domain"
	"room-bot/errors"
	"room-bot/translator"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel                string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	Room                    string        `env:"ROOM,required=true" validate:"required"`
	UpstreamURL             string        `env:"UPSTREAM_URL,required=true" validate:"required,url"`
	PingInterval            time.Duration `env:"PING_INTERVAL,default=30s" validate:"gte=0"`
	CommandPrefix           string        `env:"COMMAND_PREFIX,default=!" validate:"required"`
	CaseInsensitiveTriggers bool          `env:"CASE_INSENSITIVE_TRIGGERS,default=true"`
	ChatHistoryLimit        int           `env:"CHAT_HISTORY_LIMIT,default=0" validate:"gte=0"`
	EventBufferSize         int           `env:"EVENT_BUFFER_SIZE,default=256" validate:"gt=0"`
	SyncTimeout             time.Duration `env:"SYNC_TIMEOUT,default=10s" validate:"gt=0"`
	RestartInterval         time.Duration `env:"RESTART_INTERVAL,default=2s" validate:"gt=0"`
	HeartbeatInterval       time.Duration `env:"HEARTBEAT_INTERVAL,default=1m" validate:"gte=0"`
	DefaultBanReason        int           `env:"DEFAULT_BAN_REASON,default=1"`
	DefaultBanDuration      string        `env:"DEFAULT_BAN_DURATION,default=HOUR"`
	DefaultMuteReason       int           `env:"DEFAULT_MUTE_REASON,default=1"`
	DefaultMuteDuration     int           `env:"DEFAULT_MUTE_DURATION,default=30"`
	BadgerFilepath          string        `env:"BADGER_FILEPATH"`
	BlugeFilepath           string        `env:"BLUGE_FILEPATH"`
	DebugPort               int           `env:"DEBUG_PORT,default=0" validate:"gte=0,lte=65535"`
}

// LoadConfig reads the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	d := c.Fallbacks()
	switch {
	case !d.BanReason.Valid():
		return fmt.Errorf("%w: DEFAULT_BAN_REASON %d", errors.ErrInvalidConfig, c.DefaultBanReason)
	case !d.BanDuration.Valid():
		return fmt.Errorf("%w: DEFAULT_BAN_DURATION %q", errors.ErrInvalidConfig, c.DefaultBanDuration)
	case !d.MuteReason.Valid():
		return fmt.Errorf("%w: DEFAULT_MUTE_REASON %d", errors.ErrInvalidConfig, c.DefaultMuteReason)
	case !d.MuteDuration.Valid():
		return fmt.Errorf("%w: DEFAULT_MUTE_DURATION %d", errors.ErrInvalidConfig, c.DefaultMuteDuration)
	}
	return nil
}

// Fallbacks are the values used for moderation codes the translator does
// not recognize.
func (c Config) Fallbacks() translator.Defaults {
	return translator.Defaults{
		BanReason:    domain.BanReason(c.DefaultBanReason),
		BanDuration:  domain.BanDuration(c.DefaultBanDuration),
		MuteReason:   domain.MuteReason(c.DefaultMuteReason),
		MuteDuration: domain.MuteDuration(c.DefaultMuteDuration),
	}
}
