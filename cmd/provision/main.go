package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"arc-checkin/internal/checkin"
	"arc-checkin/internal/mysqlstore"
	"arc-checkin/internal/platform/config"
	"arc-checkin/internal/platform/db"
	"arc-checkin/internal/sheetstore"
)

// One-time setup: creates the attendee table with its header row if absent.
// Run manually before the event, never as part of request serving.
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}

	store, err := openProvisioner(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	if err := store.Provision(context.Background()); err != nil {
		log.Fatalf("[ERROR] provision: %v", err)
	}
	log.Printf("[INFO] attendee table provisioned (%s backend)", cfg.Store)
}

func openProvisioner(cfg *config.Config) (checkin.Provisioner, error) {
	switch cfg.Store {
	case "sheet":
		return sheetstore.New(cfg.Sheet.Path, cfg.Sheet.SheetName), nil
	case "mysql":
		conn, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		return mysqlstore.New(conn), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}
