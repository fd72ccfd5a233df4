package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Media struct {
		Root         string `yaml:"root"`     // filesystem root for uploaded files
		BaseURL      string `yaml:"base_url"` // public URL prefix the root is mounted at
		MaxUploadMB  int64  `yaml:"max_upload_mb"`
		MaxPerEntity int    `yaml:"max_per_entity"` // photo records per owning entity
		JPEGQuality  int    `yaml:"jpeg_quality"`   // starting quality for encoding
		MaxVariantKB int    `yaml:"max_variant_kb"` // per-variant byte budget
		Sizes        struct {
			Small  int `yaml:"small"`
			Medium int `yaml:"medium"`
			Large  int `yaml:"large"`
		} `yaml:"sizes"`
	} `yaml:"media"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the config entirely from
// environment variables when DATABASE_URL is set (test/CI mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Media.Root = "./media"
	cfg.Media.BaseURL = "/media"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// applyDefaults fills the knobs the media pipeline relies on.
func applyDefaults(cfg *Config) {
	if cfg.Media.MaxUploadMB == 0 {
		cfg.Media.MaxUploadMB = 10
	}
	if cfg.Media.MaxPerEntity == 0 {
		cfg.Media.MaxPerEntity = 30
	}
	if cfg.Media.JPEGQuality == 0 {
		cfg.Media.JPEGQuality = 85
	}
	if cfg.Media.MaxVariantKB == 0 {
		cfg.Media.MaxVariantKB = 700
	}
	if cfg.Media.Sizes.Small == 0 {
		cfg.Media.Sizes.Small = 300
	}
	if cfg.Media.Sizes.Medium == 0 {
		cfg.Media.Sizes.Medium = 800
	}
	if cfg.Media.Sizes.Large == 0 {
		cfg.Media.Sizes.Large = 1600
	}
	if cfg.Media.Root == "" {
		cfg.Media.Root = "./media"
	}
	if cfg.Media.BaseURL == "" {
		cfg.Media.BaseURL = "/media"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
