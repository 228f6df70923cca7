package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"netcollector/core/store/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the inventory tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate inventory schema: %w", err)
	}
	return nil
}

func (s *GormStore) FindDevice(ctx context.Context, name string) (*models.Device, error) {
	var device models.Device
	err := s.db.WithContext(ctx).
		Preload("Platform").
		Preload("DeviceType.Manufacturer").
		Preload("Cluster").
		Where("name = ?", name).
		First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find device %s: %w", name, err)
	}
	return &device, nil
}

func (s *GormStore) FindDevicesByAssetTag(ctx context.Context, assetTag string) ([]models.Device, error) {
	var devices []models.Device
	err := s.db.WithContext(ctx).Where("asset_tag = ?", assetTag).Order("id").Find(&devices).Error
	if err != nil {
		return nil, fmt.Errorf("find devices by asset tag %s: %w", assetTag, err)
	}
	return devices, nil
}

// likeEscaper escapes LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (s *GormStore) FindVendors(ctx context.Context, name string, mode MatchMode) ([]models.Manufacturer, error) {
	q := s.db.WithContext(ctx).Order("id")
	lower := strings.ToLower(name)
	switch mode {
	case MatchSubstring:
		q = q.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(lower)+"%")
	default:
		q = q.Where("LOWER(name) = ?", lower)
	}

	var vendors []models.Manufacturer
	if err := q.Find(&vendors).Error; err != nil {
		return nil, fmt.Errorf("find vendors %s: %w", name, err)
	}
	return vendors, nil
}

func (s *GormStore) SaveVendor(ctx context.Context, vendor *models.Manufacturer) error {
	return s.save(ctx, vendor)
}

func (s *GormStore) FindInterfaces(ctx context.Context, deviceID uint, name string) ([]models.Interface, error) {
	var ifaces []models.Interface
	err := s.db.WithContext(ctx).
		Preload("IPAddresses").
		Where("device_id = ? AND name = ?", deviceID, name).
		Order("id").
		Find(&ifaces).Error
	if err != nil {
		return nil, fmt.Errorf("find interface %s: %w", name, err)
	}
	return ifaces, nil
}

func (s *GormStore) ListInterfaces(ctx context.Context, deviceID uint) ([]models.Interface, error) {
	var ifaces []models.Interface
	if err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).Order("id").Find(&ifaces).Error; err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	return ifaces, nil
}

func (s *GormStore) SaveInterface(ctx context.Context, iface *models.Interface) error {
	return s.save(ctx, iface)
}

func (s *GormStore) FindIPAddresses(ctx context.Context, address string, interfaceID uint) ([]models.IPAddress, error) {
	var ips []models.IPAddress
	err := s.db.WithContext(ctx).Where("address = ? AND interface_id = ?", address, interfaceID).Find(&ips).Error
	if err != nil {
		return nil, fmt.Errorf("find ip address %s: %w", address, err)
	}
	return ips, nil
}

func (s *GormStore) SaveIPAddress(ctx context.Context, ip *models.IPAddress) error {
	return s.save(ctx, ip)
}

func (s *GormStore) FindConnections(ctx context.Context, interfaceID uint) ([]models.InterfaceConnection, error) {
	var conns []models.InterfaceConnection
	err := s.db.WithContext(ctx).
		Where("interface_a_id = ? OR interface_b_id = ?", interfaceID, interfaceID).
		Order("id").
		Find(&conns).Error
	if err != nil {
		return nil, fmt.Errorf("find connections: %w", err)
	}
	return conns, nil
}

func (s *GormStore) SaveConnection(ctx context.Context, conn *models.InterfaceConnection) error {
	return s.save(ctx, conn)
}

func (s *GormStore) FindInventoryItems(ctx context.Context, deviceID uint, name, serial string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.db.WithContext(ctx).
		Where("device_id = ? AND name = ? AND serial = ?", deviceID, name, serial).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("find inventory item %s: %w", name, err)
	}
	return items, nil
}

func (s *GormStore) SaveInventoryItem(ctx context.Context, item *models.InventoryItem) error {
	return s.save(ctx, item)
}

func (s *GormStore) FindOrCreatePlatform(ctx context.Context, name string) (*models.Platform, error) {
	platform := models.Platform{Name: name}
	err := s.db.WithContext(ctx).
		Where(models.Platform{Name: name}).
		Attrs(models.Platform{Slug: strings.ToLower(models.Slug(name))}).
		FirstOrCreate(&platform).Error
	if err != nil {
		return nil, fmt.Errorf("find or create platform %s: %w", name, err)
	}
	return &platform, nil
}

func (s *GormStore) FindOrCreateRole(ctx context.Context, name string) (*models.DeviceRole, error) {
	role := models.DeviceRole{Name: name}
	err := s.db.WithContext(ctx).
		Where(models.DeviceRole{Name: name}).
		Attrs(models.DeviceRole{Slug: strings.ToLower(models.Slug(name))}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, fmt.Errorf("find or create role %s: %w", name, err)
	}
	return &role, nil
}

func (s *GormStore) FindVirtualMachines(ctx context.Context, clusterID uint, name string) ([]models.VirtualMachine, error) {
	var vms []models.VirtualMachine
	err := s.db.WithContext(ctx).Where("cluster_id = ? AND name = ?", clusterID, name).Order("id").Find(&vms).Error
	if err != nil {
		return nil, fmt.Errorf("find virtual machine %s: %w", name, err)
	}
	return vms, nil
}

func (s *GormStore) SaveVirtualMachine(ctx context.Context, vm *models.VirtualMachine) error {
	return s.save(ctx, vm)
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

// save creates or updates value without touching its associations.
func (s *GormStore) save(ctx context.Context, value any) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(value).Error
}
