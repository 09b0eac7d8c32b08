package config

// Config holds runtime settings for the portal.
//
// Fields:
//   - DatabasePath: SQLite file backing the durable key/value store.
//   - SessionWithEmail: whether the persisted session record retains the
//     student's email alongside name and registration number.
type Config struct {
	DatabasePath     string
	SessionWithEmail bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "portal.db"
	c.SessionWithEmail = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
