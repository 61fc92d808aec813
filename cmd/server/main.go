// Package main is the entry point for the pHash HTTP service.
package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dkechag/Image-PHash/api"
	"github.com/dkechag/Image-PHash/api/handler"
	"github.com/dkechag/Image-PHash/internal/config"
	"github.com/dkechag/Image-PHash/internal/store"
	"github.com/dkechag/Image-PHash/phash"
)

func main() {
	cfg := setupConfig()
	initLogger()
	setLogLevel(cfg)

	defaults, err := hashDefaults(cfg)
	if err != nil {
		logrus.Fatalf("Invalid hash defaults: %v", err)
	}

	s, err := store.New(cfg.Data)
	if err != nil {
		logrus.Fatalf("Error creating store: %v", err)
	}
	defer s.Close()

	hand := handler.New(s, cfg.Size, defaults, cfg.MaxDistance)
	r := api.Router(hand)

	logrus.Infof("Server starting on %s", cfg.Listen)
	if err := r.Run(cfg.Listen); err != nil {
		logrus.Fatalf("Could not start server: %v", err)
	}
}

func setupConfig() *config.Config {
	pflag.String("log_level", "INFO", "Log level {INFO|DEBUG|WARNING|ERROR}")
	pflag.StringP("listen", "l", ":8080", "Listen address")
	pflag.StringP("data", "d", "data", "Data directory for the hash index")
	pflag.Int("size", phash.DefaultSize, "Luminance grid dimension")
	pflag.StringP("geometry", "g", "8x8", "Default selection geometry (NxN or coefficient count)")
	pflag.StringP("method", "m", "average", "Default bit method {average|median|average_x|log|diff}")
	pflag.Bool("reduce", false, "Default triangular reduction for square geometries")
	pflag.Int("max_distance", 8, "Default distance threshold for matches")

	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		logrus.Fatalf("Error binding flags: %v", err)
	}

	viper.SetEnvPrefix("PHASH")
	viper.AutomaticEnv()
	return config.Get()
}

func hashDefaults(cfg *config.Config) (phash.Config, error) {
	geometry, err := phash.ParseGeometry(cfg.Geometry)
	if err != nil {
		return phash.Config{}, err
	}
	method, err := phash.ParseMethod(cfg.Method)
	if err != nil {
		return phash.Config{}, err
	}
	hashCfg := phash.Config{Geometry: geometry, Method: method, Reduce: cfg.Reduce}
	return hashCfg, hashCfg.Validate()
}

func initLogger() {
	mainFormatter := &logrus.TextFormatter{}
	mainFormatter.FullTimestamp = true
	mainFormatter.PadLevelText = true
	mainFormatter.TimestampFormat = "2006-01-02 15:04:05"
	logrus.SetFormatter(mainFormatter)
}

func setLogLevel(cfg *config.Config) {
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		logrus.SetLevel(logrus.DebugLevel)
	case "INFO":
		logrus.SetLevel(logrus.InfoLevel)
	case "WARNING":
		logrus.SetLevel(logrus.WarnLevel)
	case "ERROR":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.Fatalf("Invalid log level provided: %s", cfg.LogLevel)
	}
}
