package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"protein-tracker/pkg/logger"

	"github.com/joho/godotenv"
)

// dotenvFiles are read in order; later files override earlier ones.
var dotenvFiles = []string{".env", ".env.local"}

// loadDotEnv fills unset variables from ENV_FILE, or from the .env and
// .env.local in the nearest directory above the working directory that has
// a .env.
func loadDotEnv(log logger.Logger) error {
	paths, err := dotenvPaths()
	if err != nil || len(paths) == 0 {
		return err
	}

	merged := make(map[string]string)
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		for key, value := range values {
			merged[key] = value
		}
	}

	applied := 0
	for key, value := range merged {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
		applied++
	}

	log.Info("dotenv: applied", "files", paths, "applied", applied, "kept_from_env", len(merged)-applied)
	return nil
}

func dotenvPaths() ([]string, error) {
	if explicit := os.Getenv("ENV_FILE"); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("ENV_FILE: %w", err)
		}
		return []string{explicit}, nil
	}

	dir, err := findUp(dotenvFiles[0])
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, name := range dotenvFiles {
		path := filepath.Join(dir, name)
		if isFile(path) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// findUp returns the first directory, from the working directory upwards,
// that contains name.
func findUp(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if isFile(filepath.Join(dir, name)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
