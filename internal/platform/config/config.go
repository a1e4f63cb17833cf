package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type SheetConfig struct {
	Path      string `yaml:"path"`
	SheetName string `yaml:"sheet_name"`
}

type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type Certs struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
}

type Config struct {
	Version     string         `yaml:"version"`
	Mode        string         `yaml:"mode"`
	Addr        string         `yaml:"addr"`
	Store       string         `yaml:"store"` // "sheet" or "mysql"
	Sheet       SheetConfig    `yaml:"sheet"`
	DB          DatabaseConfig `yaml:"database"`
	Cache       CacheConfig    `yaml:"cache"`
	Auth        AuthConfig     `yaml:"auth"`
	Certificate Certs          `yaml:"certificate"`
}

// Load reads the YAML config. ${VAR} placeholders are replaced with the
// current environment before parsing, so secrets stay out of the file.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	content := string(buf)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8443"
	}
	if cfg.Store == "" {
		cfg.Store = "sheet"
	}
	if cfg.Sheet.Path == "" {
		cfg.Sheet.Path = "data/attendees.xlsx"
	}
	if cfg.Sheet.SheetName == "" {
		cfg.Sheet.SheetName = "Attendees"
	}
	if cfg.Cache.TTLSeconds <= 0 {
		cfg.Cache.TTLSeconds = 600
	}
	return &cfg, nil
}
