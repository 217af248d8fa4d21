package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"redis"`
	Renderer struct {
		URL string `yaml:"url"`
	} `yaml:"renderer"`
	Storage struct {
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		Folder    string `yaml:"folder"`
	} `yaml:"storage"`
	Identity struct {
		URL string `yaml:"url"`
	} `yaml:"identity"`
	Branding struct {
		LogoPath string `yaml:"logo_path"`
		FontPath string `yaml:"font_path"`
	} `yaml:"branding"`
	Auth struct {
		SigningKey      string `yaml:"signing_key"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}
	return cfg
}
