package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// GitLab API base URL, e.g. https://gitlab.example.com/api/v4.
	APIURL string `yaml:"api_url" env:"GITLAB_API_URL"`
	// GitLab private token with API scope.
	APIToken string `yaml:"api_token,omitempty" env:"GITLAB_API_TOKEN"`
	// Whether or not to print verbose output.
	Verbose bool `yaml:"verbose" env:"GLABOPS_VERBOSE"`
}

// Singleton CLI config instance.
var I Config

// Returns path to the glabops global config file.
func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatal(err)
	}

	return filepath.Join(homeDir, ".config/glabops/config.yml")
}

// Initialize the CLI config.
//
// Precedence, lowest to highest: config file, .env file, environment.
func InitConfig() Config {
	cpath := GetConfigPath()

	// Read config file if it exists
	if _, err := os.Stat(cpath); !errors.Is(err, os.ErrNotExist) {
		cBytes, err := os.ReadFile(cpath)
		if err != nil {
			log.Fatal(err)
		}

		if err = yaml.Unmarshal(cBytes, &I); err != nil {
			log.Fatal(err)
		}
	}

	// Load .env file from the working directory if present
	godotenv.Load()

	// Environment variables override file values
	if err := env.Parse(&I); err != nil {
		log.Fatal(err)
	}

	return I
}
