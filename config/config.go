package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/emodel/errors"
)

// Driver names of the entity service.
const (
	DriverHTTP   = "http"
	DriverSQLite = "sqlite"
)

// Config contains general configurations for the emodel access.
type Config struct {
	// Log is the logging configuration.
	Log *Log `mapstructure:"log" validate:"required"`
	// EntityCore defines how to reach the entity service.
	EntityCore *EntityCore `mapstructure:"entitycore" validate:"required"`
	// Data is the reference data configuration.
	Data *Data `mapstructure:"data"`
}

// Log defines the logging configuration.
type Log struct {
	// Level is the current logging level
	Level string `mapstructure:"level" validate:"isdefault|oneof=debug3 debug2 debug info warning warn error critical"`
}

// EntityCore defines the entity service configuration.
type EntityCore struct {
	// Driver is the name of the service driver. Allowed values:
	// - http
	// - sqlite
	Driver string `mapstructure:"driver" validate:"oneof=http sqlite"`
	// DSN is the optional whitespace separated connection string that overrides the Connection fields.
	DSN string `mapstructure:"dsn"`
	// Connection is the connection configuration of the driver.
	Connection *Connection `mapstructure:"connection" validate:"required"`
}

// Data defines the reference data configuration.
type Data struct {
	// Dir is the directory that overrides the bundled reference data files.
	Dir string `mapstructure:"dir"`
}

// Validate validates the config.
func (c *Config) Validate() error {
	if c.EntityCore != nil && c.EntityCore.DSN != "" {
		if c.EntityCore.Connection == nil {
			c.EntityCore.Connection = &Connection{}
		}
		if err := c.EntityCore.Connection.Parse(c.EntityCore.DSN); err != nil {
			return err
		}
		c.EntityCore.DSN = ""
	}

	if err := validator.New().Struct(c); err != nil {
		return errors.Wrapf(ClassConfigInvalidValue, err, "invalid config")
	}
	return c.EntityCore.Connection.Validate()
}
