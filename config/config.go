// Package config loads the settings of the gdrive service from defaults, a YAML file, a .env file and GDRIVE_* variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "GDRIVE"
	defaultConfigFile = "gdrive.yaml"
	dotEnvFile        = ".env"
)

// Config holds the application configuration
type Config struct {
	// FolderID is the Drive folder used when an operation is not given a folder.
	FolderID string
	// ServiceAccountJSON is the path of the service account credentials file.
	ServiceAccountJSON string
	ListenAddr         string
	LogLevel           string
	LogFormat          string
}

// Load reads the configuration from fs.
// Values are resolved in the order: environment variables, .env, the config file, defaults.
// file names the YAML config file; when empty, gdrive.yaml in the working directory is used if it exists.
func Load(fs afero.Fs, file string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	if file == "" {
		exists, err := afero.Exists(fs, defaultConfigFile)
		if err != nil {
			return nil, gerrors.NewConfigError("failed to look up config file", err)
		}
		if exists {
			file = defaultConfigFile
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, gerrors.NewConfigError(fmt.Sprintf("failed to read config file '%s'", file), err)
		}
	}

	if err := loadDotEnv(fs, v); err != nil {
		return nil, err
	}

	return &Config{
		FolderID:           v.GetString("folder_id"),
		ServiceAccountJSON: v.GetString("service_account_json"),
		ListenAddr:         v.GetString("listen_addr"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}, nil
}

// loadDotEnv applies the GDRIVE_* entries of .env that are not overridden by the environment.
func loadDotEnv(fs afero.Fs, v *viper.Viper) error {
	data, err := afero.ReadFile(fs, dotEnvFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return gerrors.NewConfigError("failed to read .env", err)
	}
	entries, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return gerrors.NewConfigError("failed to parse .env", err)
	}
	for name, value := range entries {
		key, ok := strings.CutPrefix(name, envPrefix+"_")
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		v.Set(strings.ToLower(key), value)
	}
	return nil
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	switch {
	case c.FolderID == "":
		return gerrors.NewConfigError("folder_id is required", nil)
	case c.ServiceAccountJSON == "":
		return gerrors.NewConfigError("service_account_json is required", nil)
	}
	return nil
}

// ReadCredentials reads the service account credentials file.
func ReadCredentials(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, gerrors.NewConfigError(fmt.Sprintf("failed to read credentials '%s'", path), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, gerrors.NewConfigError(fmt.Sprintf("credentials '%s' are empty", path), nil)
	}
	return data, nil
}
