package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urmzd/homehub/pkg/device"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Migrate(ctx))
	version, err := db.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, version)
}

func TestBootstrapCreatesDefaults(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	needs, err := db.NeedsBootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, needs)

	require.NoError(t, db.Bootstrap(ctx))
	// second run is a no-op
	require.NoError(t, db.Bootstrap(ctx))

	cfg, err := db.ActiveConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Profile.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.APIAddress())
	require.Len(t, cfg.HubDevices, 2)

	tv, light, err := cfg.Members()
	require.NoError(t, err)
	assert.Equal(t, device.KindTelevision, tv.Kind)
	assert.Equal(t, DefaultTVName, tv.Name)
	assert.Equal(t, DefaultTVCategory, tv.Category)
	assert.Equal(t, device.KindLight, light.Kind)
	assert.Equal(t, DefaultLightName, light.Name)
	assert.Equal(t, DefaultLightCategory, light.Category)
	assert.NotEmpty(t, tv.ID)
	assert.NotEqual(t, tv.ID, light.ID)
}

func TestActiveConfigWithoutProfile(t *testing.T) {
	db := openTestDB(t)

	_, err := db.ActiveConfig(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveProfile)
}

func TestMembersRequiresBothDevices(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	p := &Profile{Name: "lab", Timezone: "UTC", IsActive: true}
	require.NoError(t, db.Profiles().Create(ctx, p))
	require.NoError(t, db.HubDevices().Create(ctx, &HubDevice{
		ProfileID: p.ID, Kind: device.KindTelevision, Name: "Den TV",
	}))

	cfg, err := db.ActiveConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg.APIServer)
	assert.Equal(t, "0.0.0.0:8080", cfg.APIAddress())

	_, _, err = cfg.Members()
	assert.ErrorIs(t, err, ErrIncompleteHub)
}

func TestHubDeviceKindIsUniquePerProfile(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Bootstrap(ctx))

	active, err := db.Profiles().GetActive(ctx)
	require.NoError(t, err)

	err = db.HubDevices().Create(ctx, &HubDevice{
		ProfileID: active.ID, Kind: device.KindLight, Name: "Porch Light",
	})
	assert.Error(t, err)

	err = db.HubDevices().Create(ctx, &HubDevice{
		ProfileID: active.ID, Kind: "toaster", Name: "Toaster",
	})
	assert.Error(t, err)
}

func TestProfilesSetActive(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Bootstrap(ctx))

	p := &Profile{Name: "cabin", Timezone: "America/Toronto"}
	require.NoError(t, db.Profiles().Create(ctx, p))
	require.NoError(t, db.Profiles().SetActive(ctx, p.ID))

	active, err := db.Profiles().GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cabin", active.Name)

	all, err := db.Profiles().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, db.Profiles().SetActive(ctx, 999), ErrProfileNotFound)
	_, err = db.Profiles().Get(ctx, 999)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAPIServerUpsert(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, db.Bootstrap(ctx))

	active, err := db.Profiles().GetActive(ctx)
	require.NoError(t, err)

	require.NoError(t, db.APIServers().Upsert(ctx, &APIServer{
		ProfileID: active.ID, Host: "127.0.0.1", Port: 9090,
	}))

	cfg, err := db.ActiveConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.APIAddress())
}

func TestOpenFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "homehub.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Migrate(context.Background()))
}
