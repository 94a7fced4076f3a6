package main

import (
	"context"
	_ "embed"
	"log"

	"weatherhub/apis/gemini"
	"weatherhub/apis/geocoding"
	"weatherhub/apis/openmeteo"
	"weatherhub/cli"
	"weatherhub/config"
	"weatherhub/manager"
)

//go:embed config.yaml
var configRaw []byte

func main() {
	ctx := context.Background()

	cfg, err := config.Load(configRaw)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	weather := manager.New(geocoding.New(cfg.Geocoding.APIKey), openmeteo.New())
	advisor := gemini.New(cfg.Gemini.APIKey)

	cmd, err := cli.New(cfg, weather, advisor)
	if err != nil {
		log.Printf("new cli: %s\n", err)
	}

	if err = cmd.ExecuteContext(ctx); err != nil {
		log.Printf("exec: %s\n", err)
	}
}
