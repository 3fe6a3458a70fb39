package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config — настройки сервиса. Читаются один раз на старте из TOML-файла;
// отсутствующий файл означает значения по умолчанию.
type Config struct {
	Port    string `toml:"port"`
	BaseURL string `toml:"base_url"`

	SessionDir   string `toml:"session_dir"`
	AccountsFile string `toml:"accounts_file"`
	ProfilesDir  string `toml:"profiles_dir"`
	MediaDir     string `toml:"media_dir"`

	BearerToken string `toml:"bearer_token"`

	// Общий пароль парка аккаунтов и исторический резервный.
	CommonPassword    string `toml:"common_password"`
	SecondaryPassword string `toml:"secondary_password"`

	// Пауза между аккаунтами в пакетных задачах, секунды.
	DelayMinSeconds int `toml:"delay_min_seconds"`
	DelayMaxSeconds int `toml:"delay_max_seconds"`
}

// Default возвращает конфигурацию по умолчанию — она повторяет
// константы, под которые сервис изначально разворачивался.
func Default() Config {
	return Config{
		Port:            "8080",
		SessionDir:      "session",
		AccountsFile:    "accounts.json",
		ProfilesDir:     "profiles",
		MediaDir:        "media",
		DelayMinSeconds: 1,
		DelayMaxSeconds: 5,
	}
}

// Load читает конфигурацию из path. Если файла нет, возвращаются
// значения по умолчанию, окружение может переопределить порт.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return applyEnv(cfg), nil
	}
	if err != nil {
		return cfg, fmt.Errorf("не удалось прочитать конфигурацию %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("не удалось разобрать конфигурацию %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	return cfg
}
