package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/urmzd/homehub/pkg/device"
)

// Default device identities created on first run.
const (
	DefaultTVName        = "Android TV"
	DefaultTVCategory    = "Entertainment"
	DefaultLightName     = "Google Light"
	DefaultLightCategory = "Outdoor"
)

// Bootstrap initializes the database with a default profile, API server and
// hub devices if it's empty. It is called after migrations.
func (db *DB) Bootstrap(ctx context.Context) error {
	needs, err := db.NeedsBootstrap(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if !needs {
		return nil
	}

	timezone := detectTimezone()

	return db.Tx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (name, timezone, is_active)
			VALUES (?, ?, 1)
		`, "default", timezone)
		if err != nil {
			return fmt.Errorf("failed to create default profile: %w", err)
		}

		profileID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get profile ID: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO api_servers (profile_id, host, port)
			VALUES (?, '0.0.0.0', 8080)
		`, profileID)
		if err != nil {
			return fmt.Errorf("failed to create default API server: %w", err)
		}

		defaults := []HubDevice{
			{Kind: device.KindTelevision, Name: DefaultTVName, Category: DefaultTVCategory},
			{Kind: device.KindLight, Name: DefaultLightName, Category: DefaultLightCategory},
		}
		for _, d := range defaults {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO hub_devices (id, profile_id, kind, name, category)
				VALUES (?, ?, ?, ?, ?)
			`, uuid.NewString(), profileID, d.Kind, d.Name, d.Category)
			if err != nil {
				return fmt.Errorf("failed to create default %s: %w", d.Kind, err)
			}
		}

		return nil
	})
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// detectTimezone attempts to detect the system timezone.
func detectTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}

	switch runtime.GOOS {
	case "darwin":
		out, err := exec.Command("systemsetup", "-gettimezone").Output()
		if err == nil {
			parts := strings.SplitN(string(out), ": ", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1])
			}
		}

	case "linux":
		if data, err := os.ReadFile("/etc/timezone"); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	// Both platforms symlink /etc/localtime into the zoneinfo tree
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if idx := strings.Index(link, "zoneinfo/"); idx != -1 {
			return link[idx+len("zoneinfo/"):]
		}
	}

	return "UTC"
}
