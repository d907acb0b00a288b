package config

import (
	"github.com/spf13/viper"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/tabulaorm/tabula/errors"
	"github.com/tabulaorm/tabula/errors/class"
	"github.com/tabulaorm/tabula/log"
)

var (
	validate      = validator.New()
	defaultConfig *Config
)

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadConfig reads the 'config' named configuration from the working
// directory or the 'configs' subdirectory.
func ReadConfig() (*Config, error) {
	return readNamedConfig("config")
}

// ReadNamedConfig reads the config with the provided name.
func ReadNamedConfig(name string) (*Config, error) {
	return readNamedConfig(name)
}

// ReadDefaultConfig reads the default configuration.
func ReadDefaultConfig() *Config {
	return readDefaultConfig()
}

func readNamedConfig(name string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.New(class.ConfigReadFailed, err.Error())
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling config failed: %v", err)
		return nil, errors.New(class.ConfigUnmarshalFailed, err.Error())
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readDefaultConfig() *Config {
	if defaultConfig == nil {
		v := viper.New()
		setDefaults(v)

		c := &Config{}
		if err := v.Unmarshal(c); err != nil {
			log.Debugf("Unmarshaling default config failed: %v", err)
			panic(err)
		}
		defaultConfig = c
	}
	return defaultConfig
}

// Validate checks the config values against their allowed sets.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.New(class.ConfigValueInvalid, err.Error())
	}
	if c.SoftDelete != nil {
		if err := validate.Struct(c.SoftDelete); err != nil {
			return errors.New(class.ConfigValueInvalid, err.Error())
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"auto_table_naming":    true,
		"pluralize_table_name": false,
		"table_name_style":     "",
		"log_level":            "info",
		"soft_delete.enabled":  false,
		"soft_delete.column":   "deleted_at",
		"soft_delete.value":    "timestamp",
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
