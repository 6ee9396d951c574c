package main

import (
	"log"
	"os"

	"binx-portfolio/cmd"
	"binx-portfolio/pkg/config"
	"binx-portfolio/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.InitStructured(cfg.Env)

	// Start server
	if err := cmd.Serve(cfg); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
