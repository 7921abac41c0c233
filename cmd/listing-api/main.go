package main

import (
	"log"
	"os"

	"github.com/craftopia/enrichment/config"
	"github.com/craftopia/enrichment/service"
)

func main() {
	path := "./config/config.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.InitConfig(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	apiService := service.NewAPIService(cfg)

	if err := apiService.StartService(); err != nil {
		log.Fatalf("failed to start listing api: %v", err)
	}
}
