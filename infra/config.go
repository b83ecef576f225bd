package infra

import (
	"github.com/caarlos0/env/v11"
)

// Config 環境変数から読み込むアプリケーション設定
// SECRET_KEYは必須: 未設定の場合はデフォルト値で黙って起動せず、起動自体を失敗させる
type Config struct {
	SecretKey string `env:"SECRET_KEY,required"`
	Port      string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT"`
	Env        string `env:"ENV"`

	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
