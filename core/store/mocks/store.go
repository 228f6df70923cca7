package mocks

import (
	"context"

	"netcollector/core/store"
	"netcollector/core/store/models"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of store.Store
type Store struct {
	mock.Mock
}

func (m *Store) FindDevice(ctx context.Context, name string) (*models.Device, error) {
	args := m.Called(ctx, name)
	if d, ok := args.Get(0).(*models.Device); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindDevicesByAssetTag(ctx context.Context, assetTag string) ([]models.Device, error) {
	args := m.Called(ctx, assetTag)
	return args.Get(0).([]models.Device), args.Error(1)
}

func (m *Store) FindVendors(ctx context.Context, name string, mode store.MatchMode) ([]models.Manufacturer, error) {
	args := m.Called(ctx, name, mode)
	return args.Get(0).([]models.Manufacturer), args.Error(1)
}

func (m *Store) SaveVendor(ctx context.Context, vendor *models.Manufacturer) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *Store) FindInterfaces(ctx context.Context, deviceID uint, name string) ([]models.Interface, error) {
	args := m.Called(ctx, deviceID, name)
	return args.Get(0).([]models.Interface), args.Error(1)
}

func (m *Store) ListInterfaces(ctx context.Context, deviceID uint) ([]models.Interface, error) {
	args := m.Called(ctx, deviceID)
	return args.Get(0).([]models.Interface), args.Error(1)
}

func (m *Store) SaveInterface(ctx context.Context, iface *models.Interface) error {
	return m.Called(ctx, iface).Error(0)
}

func (m *Store) FindIPAddresses(ctx context.Context, address string, interfaceID uint) ([]models.IPAddress, error) {
	args := m.Called(ctx, address, interfaceID)
	return args.Get(0).([]models.IPAddress), args.Error(1)
}

func (m *Store) SaveIPAddress(ctx context.Context, ip *models.IPAddress) error {
	return m.Called(ctx, ip).Error(0)
}

func (m *Store) FindConnections(ctx context.Context, interfaceID uint) ([]models.InterfaceConnection, error) {
	args := m.Called(ctx, interfaceID)
	return args.Get(0).([]models.InterfaceConnection), args.Error(1)
}

func (m *Store) SaveConnection(ctx context.Context, conn *models.InterfaceConnection) error {
	return m.Called(ctx, conn).Error(0)
}

func (m *Store) FindInventoryItems(ctx context.Context, deviceID uint, name, serial string) ([]models.InventoryItem, error) {
	args := m.Called(ctx, deviceID, name, serial)
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

func (m *Store) SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *Store) FindOrCreatePlatform(ctx context.Context, name string) (*models.Platform, error) {
	args := m.Called(ctx, name)
	if p, ok := args.Get(0).(*models.Platform); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindOrCreateRole(ctx context.Context, name string) (*models.DeviceRole, error) {
	args := m.Called(ctx, name)
	if r, ok := args.Get(0).(*models.DeviceRole); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindVirtualMachines(ctx context.Context, clusterID uint, name string) ([]models.VirtualMachine, error) {
	args := m.Called(ctx, clusterID, name)
	return args.Get(0).([]models.VirtualMachine), args.Error(1)
}

func (m *Store) SaveVirtualMachine(ctx context.Context, vm *models.VirtualMachine) error {
	return m.Called(ctx, vm).Error(0)
}

// Transaction records the call and runs fn against the mock itself.
func (m *Store) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(m)
}
