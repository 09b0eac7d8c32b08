package config

import (
	"encoding/json"
	"os"

	"github.com/dkamau/studentportal/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent from the file" from a zero value, so a JSON file only
// overrides what it actually sets.
type JsonConfig struct {
	DatabasePath     *string `json:"database_path"`
	SessionWithEmail *bool   `json:"session_with_email"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no such flag the function is a no-op.
// Read or unmarshal errors panic; configuration is resolved before any state
// exists worth preserving.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.SessionWithEmail != nil {
		cfg.SessionWithEmail = *jc.SessionWithEmail
	}
}
