// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/stackcalc/stackcalc/constant"
	"github.com/stackcalc/stackcalc/filesystem"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "STACKCALC_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the primary configuration directory.
// It follows XDG_CONFIG_HOME on Linux and the user profile equivalents on Darwin and Windows,
// unless STACKCALC_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Stackcalc))
}

// Cache resolves the application cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Stackcalc))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Session resolves the file that persists the operand stack between invocations.
func Session() string {
	return filepath.Join(Config(), "session.json")
}

