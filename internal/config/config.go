package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/goserg/arcesports/internal/access"
	"github.com/joho/godotenv"
)

const DefaultPath = "configs/server.toml"

type Server struct {
	Host  string `toml:"host" env:"ARC_HOST"`
	Port  int    `toml:"port" env:"ARC_PORT"`
	Debug bool   `toml:"debug_mode" env:"ARC_DEBUG"`
}

func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type Access struct {
	Rules []access.Rule `toml:"rules"`
}

type Wizard struct {
	RetainDraft bool `toml:"retain_draft" env:"ARC_WIZARD_RETAIN_DRAFT"`
}

type Connect struct {
	MinDelay Duration `toml:"min_delay" env:"ARC_CONNECT_MIN_DELAY"`
	MaxDelay Duration `toml:"max_delay" env:"ARC_CONNECT_MAX_DELAY"`
}

type Admin struct {
	Password string `toml:"password" env:"ARC_ADMIN_PASSWORD"`
}

type TgBot struct {
	Enabled          bool    `toml:"enabled" env:"ARC_TGBOT_ENABLED"`
	TelegramApiToken string  `toml:"token" env:"TELEGRAM_APITOKEN"`
	Chats            []int64 `toml:"chats" env:"ARC_TGBOT_CHATS"`
}

type Config struct {
	Server  Server  `toml:"server"`
	Access  Access  `toml:"access"`
	Wizard  Wizard  `toml:"wizard"`
	Connect Connect `toml:"connect"`
	Admin   Admin   `toml:"admin"`
	TgBot   TgBot   `toml:"tgbot"`
}

// Default values apply to everything the file and environment leave unset.
func Default() Config {
	return Config{
		Server: Server{Host: "localhost", Port: 3000},
		Connect: Connect{
			MinDelay: Duration(time.Second),
			MaxDelay: Duration(3 * time.Second),
		},
	}
}

// New reads the TOML file at path, then applies a .env file from the
// working directory when there is one, then the process environment.
func New(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.TgBot.Enabled && cfg.TgBot.TelegramApiToken == "" {
		return Config{}, errors.New("tgbot is enabled but has no token")
	}
	return cfg, nil
}

// ParseEnv overrides target fields from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Policy is the default route policy with the configured access rules
// applied on top.
func (c Config) Policy() (access.Policy, error) {
	return access.DefaultPolicy().Override(c.Access.Rules)
}

// Duration reads values such as "1500ms" from TOML and the environment.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
