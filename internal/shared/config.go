package shared

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		DSN string `yaml:"dsn"` // "./v0vet.db"
	} `yaml:"database"`

	Scan struct {
		SeverityThreshold string   `yaml:"severity_threshold"` // ""|"info"|"warning"|"error"
		DisabledRules     []string `yaml:"disabled_rules"`
		RulePacks         []string `yaml:"rule_packs"`
	} `yaml:"scan"`

	Reporting struct {
		OutDir string `yaml:"out_dir"` // "./reports"
	} `yaml:"reporting"`

	API struct {
		Addr           string `yaml:"addr"`            // ":8787"
		SessionMinutes int    `yaml:"session_minutes"` // 720
	} `yaml:"api"`

	Logging struct {
		Format string `yaml:"format"` // "json"|"text"
		Level  string `yaml:"level"`  // "info"|"debug"|"warn"|"error"
	} `yaml:"logging"`
}

func DefaultConfig() Config {
	var c Config
	c.Database.DSN = "./v0vet.db"
	c.Reporting.OutDir = "./reports"
	c.API.Addr = ":8787"
	c.API.SessionMinutes = 720
	c.Logging.Format = "json"
	c.Logging.Level = "info"
	return c
}

// LoadConfig layers defaults, an optional YAML file and env overrides.
// An empty path means defaults only; a named file is operator input and
// must load cleanly.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config: %w", err)
		}
	}
	// Env overrides (simple, explicit)
	if v := os.Getenv("V0VET_DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("V0VET_OUT_DIR"); v != "" {
		c.Reporting.OutDir = v
	}
	if v := os.Getenv("V0VET_API_ADDR"); v != "" {
		c.API.Addr = v
	}
	if v := os.Getenv("V0VET_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("V0VET_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("V0VET_SEVERITY"); v != "" {
		c.Scan.SeverityThreshold = v
	}
	return c, nil
}
