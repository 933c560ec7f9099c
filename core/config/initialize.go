package config

import (
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into the directory if none
// exists yet, then loads it.
func Initialize(path string, logger *log.Logger) (*Configuration, error) {
	configPath := filepath.Join(path, ConfigurationName)

	switch _, err := os.Stat(configPath); {
	case err == nil:
		logger.Printf("%s already exists, leaving it unchanged", ConfigurationName)

	case os.IsNotExist(err):
		logger.Printf("Creating %s", ConfigurationName)
		if err := os.WriteFile(configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	return Load(path)
}
