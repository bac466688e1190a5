// Package ioconfig reads config.yaml and GNSYN_* environment variables
// into a Config.
package ioconfig

import (
	"strings"

	"github.com/gnames/gnsyn/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override
// config.yaml values.
const EnvPrefix = "GNSYN"

// Load reads the config file of the home directory and applies
// environment variable overrides. The result carries only persistent
// fields; apply it to a default Config via ToOptions.
func Load(homeDir string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(homeDir)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

// Options returns options from config.yaml and environment followed by
// the home directory.
func Options(homeDir string) ([]config.Option, error) {
	cfg, err := Load(homeDir)
	if err != nil {
		return nil, err
	}
	res := cfg.ToOptions()
	res = append(res, config.OptHomeDir(homeDir))
	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Env variables are bound one by one, so the list of allowed
	// variables is explicit. They match fields of config.ToOptions().
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.delimiter", EnvPrefix+"_INPUT_DELIMITER")

	// Render configuration
	v.BindEnv("render.lsid_base_url", EnvPrefix+"_RENDER_LSID_BASE_URL")
	v.BindEnv("render.unmatched", EnvPrefix+"_RENDER_UNMATCHED")
	v.BindEnv("render.templates_file", EnvPrefix+"_RENDER_TEMPLATES_FILE")

	// Log configuration
	v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL")
	v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT")
	v.BindEnv("log.destination", EnvPrefix+"_LOG_DESTINATION")

	v.AutomaticEnv()
}
