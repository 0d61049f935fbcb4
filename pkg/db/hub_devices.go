package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// HubDevice is the stored identity of one of the hub's devices.
type HubDevice struct {
	ID        string
	ProfileID int64
	Kind      string
	Name      string
	Category  string
	CreatedAt time.Time
}

// HubDeviceStore provides hub device identity operations.
type HubDeviceStore interface {
	List(ctx context.Context, profileID int64) ([]*HubDevice, error)
	Create(ctx context.Context, d *HubDevice) error
}

// HubDevices returns a HubDeviceStore for this database.
func (db *DB) HubDevices() HubDeviceStore {
	return &hubDeviceStore{db: db}
}

type hubDeviceStore struct {
	db *DB
}

func (s *hubDeviceStore) List(ctx context.Context, profileID int64) ([]*HubDevice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile_id, kind, name, category, created_at
		FROM hub_devices WHERE profile_id = ? ORDER BY kind DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var devices []*HubDevice
	for rows.Next() {
		d := &HubDevice{}
		var createdAt string
		if err := rows.Scan(&d.ID, &d.ProfileID, &d.Kind, &d.Name, &d.Category, &createdAt); err != nil {
			return nil, err
		}
		d.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// Create stores d, assigning a new ID when d.ID is empty.
func (s *hubDeviceStore) Create(ctx context.Context, d *HubDevice) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO hub_devices (id, profile_id, kind, name, category)
		VALUES (?, ?, ?, ?, ?)
	`, d.ID, d.ProfileID, d.Kind, d.Name, d.Category)
	if err != nil {
		return fmt.Errorf("failed to create hub device: %w", err)
	}
	return nil
}
