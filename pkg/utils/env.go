package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads a .env file from the given directory if one exists.
// Missing files are fine; real environment variables always win.
func LoadEnv(dir string) {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err == nil {
		logrus.Debugf("loaded environment from %s", path)
	}
}
