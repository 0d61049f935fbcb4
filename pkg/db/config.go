package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/urmzd/homehub/pkg/device"
	"github.com/urmzd/homehub/pkg/hub"
)

var (
	ErrNoActiveProfile = errors.New("no active profile found")
	ErrIncompleteHub   = errors.New("active profile needs exactly one television and one light")
)

// Config represents the complete runtime configuration loaded from the database.
type Config struct {
	Profile    *Profile
	APIServer  *APIServer
	HubDevices []*HubDevice
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return "0.0.0.0:8080"
	}
	return c.APIServer.Address()
}

// Timezone returns the profile timezone.
func (c *Config) Timezone() string {
	if c.Profile == nil {
		return "UTC"
	}
	return c.Profile.Timezone
}

// Members returns the television and light identities to build a hub from.
func (c *Config) Members() (tv, light hub.Member, err error) {
	var haveTV, haveLight bool
	for _, d := range c.HubDevices {
		m := hub.Member{ID: d.ID, Kind: d.Kind, Name: d.Name, Category: d.Category}
		switch d.Kind {
		case device.KindTelevision:
			tv, haveTV = m, true
		case device.KindLight:
			light, haveLight = m, true
		}
	}
	if !haveTV || !haveLight {
		return hub.Member{}, hub.Member{}, ErrIncompleteHub
	}
	return tv, light, nil
}

// ActiveConfig loads the complete configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{
		Profile: profile,
	}

	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	devices, err := db.HubDevices().List(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hub devices: %w", err)
	}
	config.HubDevices = devices

	return config, nil
}
