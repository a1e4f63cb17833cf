package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"arc-checkin/internal/platform/auth"
	"arc-checkin/internal/platform/config"
)

// Mints a staff token for the attendee-list routes. Tokens are handed out
// out-of-band; there is no account system behind them.
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	name := flag.String("name", "", "staff member name")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *name == "" {
		log.Fatal("[ERROR] -name is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[ERROR] load config: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("[ERROR] auth.jwt_secret is not configured")
	}

	token, err := auth.CreateStaffToken(*name, []byte(cfg.Auth.JWTSecret), *ttl)
	if err != nil {
		log.Fatalf("[ERROR] create token: %v", err)
	}
	fmt.Println(token)
}
