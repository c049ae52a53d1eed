package main

import (
	"os"
	"path/filepath"
)

func defaultStateDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".extman"), nil
}

func defaultConfigPath(stateDir string) string {
	return filepath.Join(stateDir, "config.yaml")
}
