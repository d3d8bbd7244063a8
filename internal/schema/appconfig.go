package schema

// Defaults for AppConfig. Only the database URL has no default; the app
// refuses to start without one.
const (
	DefaultAppName        = "Mi Tienda Online"
	DefaultPort           = 8000
	DefaultMaxConnections = 100
)

// AppConfig is the validated application configuration record. The port
// must be outside the privileged range and the connection limit sane.
type AppConfig struct {
	AppName        string `json:"app_name" mapstructure:"name"`
	Port           int    `json:"port" mapstructure:"port" validate:"min=1024,max=65535"`
	Debug          bool   `json:"debug" mapstructure:"debug"`
	DatabaseURL    string `json:"database_url" mapstructure:"database_url" validate:"required"`
	MaxConnections int    `json:"max_connections" mapstructure:"max_connections" validate:"min=1,max=1000"`
}

// NewAppConfig builds a configuration with every default applied.
func NewAppConfig(databaseURL string) (*AppConfig, error) {
	c := &AppConfig{
		AppName:        DefaultAppName,
		Port:           DefaultPort,
		DatabaseURL:    databaseURL,
		MaxConnections: DefaultMaxConnections,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate runs the range and presence rules, aggregated.
func (c *AppConfig) Validate() error {
	return check(c)
}

// Map converts the configuration to its plain key-value form.
func (c *AppConfig) Map() map[string]any {
	return map[string]any{
		"app_name":        c.AppName,
		"port":            c.Port,
		"debug":           c.Debug,
		"database_url":    c.DatabaseURL,
		"max_connections": c.MaxConnections,
	}
}

// AppConfigFromMap rebuilds a configuration from its map form, re-running
// all rules. Absent keys take the defaults.
func AppConfigFromMap(m map[string]any) (*AppConfig, error) {
	r := newMapReader(m)
	c := &AppConfig{
		AppName:        r.strOr("app_name", DefaultAppName),
		Port:           r.intOr("port", DefaultPort),
		Debug:          r.boolOr("debug", false),
		DatabaseURL:    r.str("database_url"),
		MaxConnections: r.intOr("max_connections", DefaultMaxConnections),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
