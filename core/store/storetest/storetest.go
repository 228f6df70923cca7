// Package storetest builds in-memory inventory stores for tests.
package storetest

import (
	"testing"

	"netcollector/core/database"
	"netcollector/core/store"
	"netcollector/core/store/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite database and a store on top of it.
func New(t *testing.T) (*gorm.DB, *store.GormStore) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db, store.NewGormStore(db)
}

// DeviceOption customises a device created by Device.
type DeviceOption func(db *gorm.DB, d *models.Device)

// WithPlatform sets the device platform.
func WithPlatform(name string) DeviceOption {
	return func(db *gorm.DB, d *models.Device) {
		p := models.Platform{Name: name, Slug: models.Slug(name)}
		db.FirstOrCreate(&p, models.Platform{Name: name})
		d.PlatformID = &p.ID
	}
}

// WithAssetTag sets the device asset tag.
func WithAssetTag(tag string) DeviceOption {
	return func(db *gorm.DB, d *models.Device) {
		d.AssetTag = &tag
	}
}

// WithCluster assigns the device to a cluster.
func WithCluster(name string) DeviceOption {
	return func(db *gorm.DB, d *models.Device) {
		c := models.Cluster{Name: name}
		db.FirstOrCreate(&c, models.Cluster{Name: name})
		d.ClusterID = &c.ID
	}
}

// Device creates a device whose hardware type is made by manufacturer and
// returns it with relations loaded.
func Device(t *testing.T, db *gorm.DB, name, manufacturer string, opts ...DeviceOption) *models.Device {
	t.Helper()

	m := models.Manufacturer{Name: manufacturer, Slug: models.Slug(manufacturer)}
	require.NoError(t, db.FirstOrCreate(&m, models.Manufacturer{Name: manufacturer}).Error)

	dt := models.DeviceType{Model: name + "-model", ManufacturerID: m.ID}
	require.NoError(t, db.Create(&dt).Error)

	d := models.Device{Name: name, DeviceTypeID: dt.ID}
	for _, opt := range opts {
		opt(db, &d)
	}
	require.NoError(t, db.Omit("Platform", "DeviceType", "Cluster").Create(&d).Error)

	loaded, err := store.NewGormStore(db).FindDevice(t.Context(), name)
	require.NoError(t, err)
	return loaded
}

// Count returns the number of rows of model.
func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
