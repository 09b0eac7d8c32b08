package config

import (
	"flag"
	"os"

	"github.com/dkamau/studentportal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string            path to the portal database file (default from Config)
//	-session-email bool  keep email in the persisted session record
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-session-email"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the portal database file")
	fs.BoolVar(&cfg.SessionWithEmail, "session-email", cfg.SessionWithEmail, "keep email in the session record")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
