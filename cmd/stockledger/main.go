package main

import (
	"context"
	"flag"
	"log"
	"os"

	"stockledger/internal/config"
	"stockledger/internal/menu"
	"stockledger/internal/repository/sqlite"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "config file path (overrides search order)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	fixturePath := flag.String("fixture", "", "fixture SQL path (overrides config)")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, loadedFrom, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if loadedFrom != "" {
		log.Printf("Config loaded: %s", loadedFrom)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *fixturePath != "" {
		cfg.Fixture.Path = *fixturePath
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()
	log.Printf("Database opened: %s", cfg.Database.Path)

	m := menu.New(store, os.Stdin, os.Stdout, cfg.Fixture.Path)
	if err := m.Run(context.Background()); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}

func loadConfig(explicit string) (*config.Config, string, error) {
	if explicit != "" {
		return config.LoadFromPath(explicit)
	}
	return config.Load()
}
