package config

import (
	"fmt"

	"github.com/esteria/esteria-go/pkg/esteria"
	"github.com/spf13/viper"
)

type Config struct {
	API      API            `mapstructure:"api"`
	Metrics  Metrics        `mapstructure:"metrics"`
	Provider esteria.Config `mapstructure:"provider"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Metrics struct {
	Port string `mapstructure:"port"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("provider.timeout", "10s")
	viper.SetDefault("provider.max_retry", 3)

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
