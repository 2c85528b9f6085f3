package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = "/.env"
	defaultOverrideFileName = "/.local.env"
)

type EnvLoader struct {
	logger logger
}

type logger interface {
	Warnf(format string, a ...any)
	Infof(format string, a ...any)
	Debugf(format string, a ...any)
}

// NewEnvFile loads configuration from env files in configFolder and
// returns a Config backed by the process environment. File precedence,
// lowest to highest: .env, .local.env, .<APP_ENV>.env. Variables already
// present in the process environment always win.
func NewEnvFile(configFolder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(configFolder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	initialEnv := captureInitialEnv()

	// Capture APP_ENV before loading files to ensure proper environment-specific file loading
	appEnv := os.Getenv("APP_ENV")

	envMap := make(map[string]string)

	e.loadEnvFile(folder+defaultFileName, envMap, true)
	e.loadEnvFile(folder+defaultOverrideFileName, envMap, false)

	if appEnv != "" {
		e.loadEnvFile(fmt.Sprintf("%s/.%s.env", folder, appEnv), envMap, false)
	}

	for key, value := range envMap {
		// Only set if not in initial system environment
		if !initialEnv[key] {
			os.Setenv(key, value)
		}
	}
}

func (e *EnvLoader) loadEnvFile(path string, envMap map[string]string, base bool) {
	content, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			e.logger.Warnf("Failed to load config from file: %v, Err: %v", path, err)
		}

		return
	}

	for k, v := range content {
		envMap[k] = v
	}

	if base {
		e.logger.Infof("Loaded config from file: %v", path)
	} else {
		e.logger.Debugf("Applied override config: %v", path)
	}
}

func captureInitialEnv() map[string]bool {
	initialEnv := make(map[string]bool)

	for _, envVar := range os.Environ() {
		key, _, _ := strings.Cut(envVar, "=")
		initialEnv[key] = true
	}

	return initialEnv
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
