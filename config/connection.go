package config

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/emodel/errors"
)

// Connection is the configuration of the entity service connection.
// The connection config can be set by providing raw_url or with host, port, protocol and path.
type Connection struct {
	// Host defines the access hostname or the ip address
	Host string `mapstructure:"host" validate:"isdefault|hostname|ip"`
	// Port is the connection port
	Port int `mapstructure:"port" validate:"gte=0,lte=65535"`
	// Protocol is the protocol used in the connection
	Protocol string `mapstructure:"protocol"`
	// Path is the url path of the service or the database file path.
	Path string `mapstructure:"path"`
	// RawURL is the raw connection url. If set it must define the protocol ('http://',
	// 'https://'...)
	RawURL string `mapstructure:"raw_url" validate:"isdefault|url"`
	// Username is the username used to get connection credential
	Username string `mapstructure:"username"`
	// Password is the password used to get connection credentials
	Password string `mapstructure:"password"`
	// DBName is the database name for the sql drivers.
	DBName string `mapstructure:"dbname"`
	// Options contains connection dependent specific options
	Options map[string]interface{} `mapstructure:"options"`
	// MaxTimeout defines the maximum timeout for the given connection
	MaxTimeout *time.Duration `mapstructure:"max_timeout"`
}

// Parse parses the connection configuration from the whitespace separated key value string.
// I.e. 'host=172.16.1.1 port=8000 protocol=https path=/api/entitycore max_timeout=10s'
func (c *Connection) Parse(raw string) error {
	for _, pair := range strings.Fields(raw) {
		eqSign := strings.IndexRune(pair, '=')
		if eqSign == -1 {
			return errors.NewDetf(ClassConfigInvalidValue, "invalid connection config, key value pair: '%s' - equal sign not found", pair)
		}

		key := pair[:eqSign]
		value := pair[eqSign+1:]
		switch key {
		case "host", "hostname":
			c.Host = value
		case "port":
			port, err := strconv.Atoi(value)
			if err != nil {
				return errors.NewDetf(ClassConfigInvalidValue, "connection port configuration is not an integer: '%s'", value)
			}
			c.Port = port
		case "protocol":
			c.Protocol = value
		case "path":
			c.Path = value
		case "raw_url":
			c.RawURL = value
		case "username", "user":
			c.Username = value
		case "password":
			c.Password = value
		case "max_timeout":
			d, err := time.ParseDuration(value)
			if err != nil {
				return errors.NewDetf(ClassConfigInvalidValue, "connection config max_timeout parse duration failed: '%v'", err)
			}
			c.MaxTimeout = &d
		case "dbname":
			c.DBName = value
		default:
			if c.Options == nil {
				c.Options = map[string]interface{}{}
			}
			c.Options[key] = value
		}
	}
	return nil
}

// Validate validates the connection config.
func (c *Connection) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrapf(ClassConfigInvalidValue, err, "invalid connection config")
	}
	if c.RawURL != "" {
		if _, err := url.Parse(c.RawURL); err != nil {
			return errors.Newf(ClassConfigInvalidValue, "invalid raw url for the connection config: %v", err)
		}
	}
	if c.MaxTimeout != nil && *c.MaxTimeout < 0 {
		return errors.New(ClassConfigInvalidValue, "connection max_timeout cannot be negative")
	}
	return nil
}

// URL gets the base url of the connection. The RawURL takes precedence over the
// host, port, protocol and path fields.
func (c *Connection) URL() (*url.URL, error) {
	if c.RawURL != "" {
		u, err := url.Parse(c.RawURL)
		if err != nil {
			return nil, errors.NewDetf(ClassConfigInvalidValue, "invalid raw url for the connection config: %v", err)
		}
		return u, nil
	}
	if c.Host == "" {
		return nil, errors.NewDet(ClassConfigInvalidValue, "connection config has no host nor raw_url defined")
	}

	u := &url.URL{Scheme: c.Protocol, Host: c.Host, Path: c.Path}
	if u.Scheme == "" {
		u.Scheme = "http"
	}
	if c.Port != 0 {
		u.Host += ":" + strconv.Itoa(c.Port)
	}
	if c.Username != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}
	return u, nil
}

// DataSource gets the sql data source name of the connection. It is the RawURL, the
// Path or the DBName, whichever is set first. Defaults to the in memory database.
func (c *Connection) DataSource() string {
	switch {
	case c.RawURL != "":
		return c.RawURL
	case c.Path != "":
		return c.Path
	case c.DBName != "":
		return c.DBName
	default:
		return ":memory:"
	}
}
