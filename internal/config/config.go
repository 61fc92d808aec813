package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	Listen      string `mapstructure:"listen"`
	Data        string `mapstructure:"data"`
	Size        int    `mapstructure:"size"`
	Geometry    string `mapstructure:"geometry"`
	Method      string `mapstructure:"method"`
	Reduce      bool   `mapstructure:"reduce"`
	MaxDistance int    `mapstructure:"max_distance"`
}

func Get() *Config {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logrus.Fatalf("Error unmarshalling config: %v", err)
	}
	logrus.Debugf("Got config: %+v", cfg)
	return &cfg
}
