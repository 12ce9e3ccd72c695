// Package config owns castgrab's settings: registered defaults, CASTGRAB_* environment overrides and the TOML file.
package config

import (
	"fmt"
	"strings"

	"github.com/castgrab/castgrab/constant"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/where"
	"github.com/spf13/viper"
)

var envReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then loads the config file if there is one.
// Precedence is flag, environment, file, default.
func Setup() error {
	path := where.ConfigFile()

	viper.SetFs(filesystem.API())
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix(constant.Castgrab)
	viper.SetEnvKeyReplacer(envReplacer)
	viper.SetTypeByDefaultValue(true)

	for _, field := range Fields() {
		viper.SetDefault(field.Key, field.Value)
		if err := viper.BindEnv(field.Key); err != nil {
			return fmt.Errorf("bind %s: %w", field.Key, err)
		}
	}

	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Write saves the current settings to the config file and returns its path.
// An existing file is left untouched unless overwrite is set.
func Write(overwrite bool) (string, error) {
	path := where.ConfigFile()
	if overwrite {
		return path, viper.WriteConfigAs(path)
	}
	return path, viper.SafeWriteConfigAs(path)
}
