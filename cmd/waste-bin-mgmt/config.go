package main

import (
	"io"
	"os"

	"github.com/diwise/waste-bin-mgmt/internal/pkg/application/events"
	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/router"
	"gopkg.in/yaml.v2"
)

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	controlPort

	configurationFile

	dbPath
	insertBatchSize
)

type appConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
	events.Config  `yaml:",inline"`
}

func loadAppConfig(path string) (*appConfig, error) {
	if path == "" {
		return &appConfig{AllowedOrigins: []string{router.DefaultAllowedOrigin}}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	return parseExternalConfigFile(f)
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{router.DefaultAllowedOrigin}
	}

	return cfg, nil
}
