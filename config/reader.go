package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/log"
)

// EnvPrefix is the prefix of the environment variables overriding the config values,
// i.e. EMODEL_ENTITYCORE_DRIVER=sqlite.
const EnvPrefix = "EMODEL"

// ReadNamedConfig reads the config with the provided name from the working
// directory or the 'configs' directory.
func ReadNamedConfig(name string) (*Config, error) {
	v := newViper()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")
	return readConfig(v)
}

// ReadConfig reads the config with the default name 'config'.
func ReadConfig() (*Config, error) {
	return ReadNamedConfig("config")
}

// ReadConfigFile reads the config from the file at 'path'.
func ReadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return readConfig(v)
}

// Default gets the default configuration with the environment overrides.
func Default() (*Config, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func readConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(ClassConfigRead, err, "reading config failed")
	}
	log.Debugf("Using config file: %s", v.ConfigFileUsed())
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		log.Debugf("Unmarshaling Config failed. %v", err)
		return nil, errors.Wrapf(ClassConfigInvalidValue, err, "unmarshaling config failed")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default values
func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"log.level":                         "info",
		"entitycore.driver":                 DriverHTTP,
		"entitycore.dsn":                    "",
		"entitycore.connection.raw_url":     "",
		"entitycore.connection.host":        "localhost",
		"entitycore.connection.port":        8000,
		"entitycore.connection.protocol":    "http",
		"entitycore.connection.path":        "",
		"entitycore.connection.dbname":      "",
		"entitycore.connection.max_timeout": "30s",
		"data.dir":                          "",
	}

	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
