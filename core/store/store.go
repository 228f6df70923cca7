package store

import (
	"context"
	"errors"

	"netcollector/core/store/models"
)

// ErrNotFound is returned when a single-entity lookup finds nothing.
var ErrNotFound = errors.New("not found")

// MatchMode selects how vendor names are compared.
type MatchMode int

const (
	// MatchExact compares names case-insensitively for equality.
	MatchExact MatchMode = iota
	// MatchSubstring finds names containing the query, case-insensitively.
	MatchSubstring
)

// Store is the inventory store used by the dispatcher and the reconcilers.
// Lookups returning lists yield an empty list, never ErrNotFound.
type Store interface {
	FindDevice(ctx context.Context, name string) (*models.Device, error)
	FindDevicesByAssetTag(ctx context.Context, assetTag string) ([]models.Device, error)

	FindVendors(ctx context.Context, name string, mode MatchMode) ([]models.Manufacturer, error)
	SaveVendor(ctx context.Context, vendor *models.Manufacturer) error

	FindInterfaces(ctx context.Context, deviceID uint, name string) ([]models.Interface, error)
	ListInterfaces(ctx context.Context, deviceID uint) ([]models.Interface, error)
	SaveInterface(ctx context.Context, iface *models.Interface) error

	FindIPAddresses(ctx context.Context, address string, interfaceID uint) ([]models.IPAddress, error)
	SaveIPAddress(ctx context.Context, ip *models.IPAddress) error

	FindConnections(ctx context.Context, interfaceID uint) ([]models.InterfaceConnection, error)
	SaveConnection(ctx context.Context, conn *models.InterfaceConnection) error

	FindInventoryItems(ctx context.Context, deviceID uint, name, serial string) ([]models.InventoryItem, error)
	SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error

	FindOrCreatePlatform(ctx context.Context, name string) (*models.Platform, error)
	FindOrCreateRole(ctx context.Context, name string) (*models.DeviceRole, error)
	FindVirtualMachines(ctx context.Context, clusterID uint, name string) ([]models.VirtualMachine, error)
	SaveVirtualMachine(ctx context.Context, vm *models.VirtualMachine) error

	// Transaction runs fn in a unit of work. Nested calls open savepoints, so a
	// failing inner call rolls back only its own writes.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
