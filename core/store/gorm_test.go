package store_test

import (
	"context"
	"errors"
	"testing"

	"netcollector/core/store"
	"netcollector/core/store/models"
	"netcollector/core/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDevice(t *testing.T) {
	db, s := storetest.New(t)
	storetest.Device(t, db, "sw1", "Cisco", storetest.WithPlatform("IOS"), storetest.WithAssetTag("SW-0001"))
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		d, err := s.FindDevice(ctx, "sw1")
		require.NoError(t, err)
		assert.Equal(t, "Cisco", d.DeviceType.Manufacturer.Name)
		require.NotNil(t, d.Platform)
		assert.Equal(t, "IOS", d.Platform.Name)
		assert.Nil(t, d.Cluster)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.FindDevice(ctx, "sw9")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ByAssetTag", func(t *testing.T) {
		devices, err := s.FindDevicesByAssetTag(ctx, "SW-0001")
		require.NoError(t, err)
		require.Len(t, devices, 1)
		assert.Equal(t, "sw1", devices[0].Name)

		devices, err = s.FindDevicesByAssetTag(ctx, "SW-9999")
		require.NoError(t, err)
		assert.Empty(t, devices)
	})
}

func TestFindVendors(t *testing.T) {
	_, s := storetest.New(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVendor(ctx, &models.Manufacturer{Name: "Cisco Systems", Slug: "Cisco-Systems"}))
	require.NoError(t, s.SaveVendor(ctx, &models.Manufacturer{Name: "Cisco", Slug: "Cisco"}))

	exact, err := s.FindVendors(ctx, "CISCO", store.MatchExact)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, "Cisco", exact[0].Name)

	sub, err := s.FindVendors(ctx, "cisco", store.MatchSubstring)
	require.NoError(t, err)
	require.Len(t, sub, 2)
	assert.Equal(t, "Cisco Systems", sub[0].Name, "ordered by id")

	none, err := s.FindVendors(ctx, "Juniper", store.MatchSubstring)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindVendors_WildcardsMatchLiterally(t *testing.T) {
	_, s := storetest.New(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVendor(ctx, &models.Manufacturer{Name: "FooXBar", Slug: "FooXBar"}))
	require.NoError(t, s.SaveVendor(ctx, &models.Manufacturer{Name: "100% Networks!", Slug: "100-Networks-"}))

	got, err := s.FindVendors(ctx, "Foo_Bar", store.MatchSubstring)
	require.NoError(t, err)
	assert.Empty(t, got, "underscore is not a wildcard")

	got, err = s.FindVendors(ctx, "%", store.MatchSubstring)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% Networks!", got[0].Name)

	got, err = s.FindVendors(ctx, "networks!", store.MatchSubstring)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestInterfacesAndConnections(t *testing.T) {
	db, s := storetest.New(t)
	dev := storetest.Device(t, db, "sw1", "Cisco")
	ctx := context.Background()

	a := &models.Interface{DeviceID: dev.ID, Name: "Gi0/1", Enabled: true}
	b := &models.Interface{DeviceID: dev.ID, Name: "Gi0/2"}
	require.NoError(t, s.SaveInterface(ctx, a))
	require.NoError(t, s.SaveInterface(ctx, b))

	ifaceID := a.ID
	require.NoError(t, s.SaveIPAddress(ctx, &models.IPAddress{Address: "10.0.0.1/24", InterfaceID: &ifaceID}))

	found, err := s.FindInterfaces(ctx, dev.ID, "Gi0/1")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Len(t, found[0].IPAddresses, 1)

	// Saving a loaded interface does not duplicate its addresses.
	found[0].Description = "uplink"
	require.NoError(t, s.SaveInterface(ctx, &found[0]))
	assert.EqualValues(t, 1, storetest.Count(t, db, &models.IPAddress{}))

	all, err := s.ListInterfaces(ctx, dev.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	ips, err := s.FindIPAddresses(ctx, "10.0.0.1/24", b.ID)
	require.NoError(t, err)
	assert.Empty(t, ips)

	require.NoError(t, s.SaveConnection(ctx, &models.InterfaceConnection{InterfaceAID: a.ID, InterfaceBID: b.ID}))
	conns, err := s.FindConnections(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, a.ID, conns[0].Peer(b.ID))
}

func TestFindOrCreate(t *testing.T) {
	db, s := storetest.New(t)
	ctx := context.Background()

	p1, err := s.FindOrCreatePlatform(ctx, "Linux")
	require.NoError(t, err)
	p2, err := s.FindOrCreatePlatform(ctx, "Linux")
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, "linux", p1.Slug)
	assert.EqualValues(t, 1, storetest.Count(t, db, &models.Platform{}))

	r, err := s.FindOrCreateRole(ctx, "Server")
	require.NoError(t, err)
	assert.Equal(t, "server", r.Slug)
}

func TestVirtualMachineDisksRoundTrip(t *testing.T) {
	_, s := storetest.New(t)
	ctx := context.Background()

	vm := &models.VirtualMachine{
		ClusterID: 1,
		Name:      "vm1",
		Disks:     []models.Disk{{Index: "0", Name: "vda", Path: "/vm/vda.qcow2", SizeBytes: 10 << 30}},
	}
	require.NoError(t, s.SaveVirtualMachine(ctx, vm))

	vms, err := s.FindVirtualMachines(ctx, 1, "vm1")
	require.NoError(t, err)
	require.Len(t, vms, 1)
	assert.Equal(t, vm.Disks, vms[0].Disks)
}

func TestTransaction_NestedRollback(t *testing.T) {
	db, s := storetest.New(t)
	ctx := context.Background()

	err := s.Transaction(ctx, func(tx store.Store) error {
		require.NoError(t, tx.SaveVendor(ctx, &models.Manufacturer{Name: "Kept"}))

		inner := tx.Transaction(ctx, func(tx store.Store) error {
			require.NoError(t, tx.SaveVendor(ctx, &models.Manufacturer{Name: "Dropped"}))
			return errors.New("bad item")
		})
		assert.Error(t, inner)
		return nil
	})
	require.NoError(t, err)

	var names []string
	require.NoError(t, db.Model(&models.Manufacturer{}).Pluck("name", &names).Error)
	assert.Equal(t, []string{"Kept"}, names)
}

func TestTransaction_OuterRollback(t *testing.T) {
	db, s := storetest.New(t)
	ctx := context.Background()

	err := s.Transaction(ctx, func(tx store.Store) error {
		require.NoError(t, tx.SaveVendor(ctx, &models.Manufacturer{Name: "Gone"}))
		return errors.New("abort")
	})
	assert.EqualError(t, err, "abort")
	assert.EqualValues(t, 0, storetest.Count(t, db, &models.Manufacturer{}))
}
