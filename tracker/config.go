// Package tracker wires the pieces of the collection agent together:
// configuration, the per-page router and the submit-then-notify
// policy around the tracker API.
package tracker

import (
	"os"

	"tautracker/lib/configuration"
)

const (
	DefaultBaseUrl   = "https://tracker.tauguide.de/v1/"
	DefaultGameUrl   = "https://alpha.taustation.space"
	DefaultSessionDb = "tautracker-session.db"
)

// Config is owned by the player's preference file; the agent only
// reads it.
type Config struct {
	// access token for the tracker service, handed out per player
	Token string `json:"token"`
	// tracker API base url including the version prefix
	BaseUrl string `json:"base_url"`
	// game site to fetch pages from
	GameUrl string `json:"game_url"`
	// render fuel price comparisons as a single summary line
	// instead of the full table
	CompactFuelDisplay bool `json:"compact_fuel_display"`
	// where session cookies are kept between runs
	SessionDb string `json:"session_db"`
}

// LoadConfig reads config.json5 (plus a config.local.json5 override)
// and fills in defaults. A missing file is not an error: the handlers
// prompt for the token on the first submission attempt instead.
func LoadConfig(name string) (Config, error) {
	cfg, err := configuration.Read[Config](name)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.BaseUrl == "" {
		c.BaseUrl = DefaultBaseUrl
	}
	if c.GameUrl == "" {
		c.GameUrl = DefaultGameUrl
	}
	if c.SessionDb == "" {
		c.SessionDb = DefaultSessionDb
	}
	return c
}
