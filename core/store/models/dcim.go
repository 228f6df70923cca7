package models

// Manufacturer is a hardware vendor.
type Manufacturer struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(100);uniqueIndex"`
	Slug string `gorm:"column:slug;type:varchar(100)"`
}

func (Manufacturer) TableName() string {
	return "dcim_manufacturer"
}

// Platform is the software platform of a device. When set it overrides the
// hardware manufacturer as the device vendor.
type Platform struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(100);uniqueIndex"`
	Slug string `gorm:"column:slug;type:varchar(100)"`
}

func (Platform) TableName() string {
	return "dcim_platform"
}

// DeviceType is a hardware model.
type DeviceType struct {
	ID             uint         `gorm:"primaryKey;column:id"`
	Model          string       `gorm:"column:model;type:varchar(100)"`
	ManufacturerID uint         `gorm:"column:manufacturer_id"`
	Manufacturer   Manufacturer `gorm:"foreignKey:ManufacturerID"`
}

func (DeviceType) TableName() string {
	return "dcim_devicetype"
}

// DeviceRole is the functional role of a device or virtual machine.
type DeviceRole struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(100);uniqueIndex"`
	Slug string `gorm:"column:slug;type:varchar(100)"`
}

func (DeviceRole) TableName() string {
	return "dcim_devicerole"
}

// Cluster groups the virtual machines hosted by a device.
type Cluster struct {
	ID   uint   `gorm:"primaryKey;column:id"`
	Name string `gorm:"column:name;type:varchar(100);uniqueIndex"`
}

func (Cluster) TableName() string {
	return "virtualization_cluster"
}

// Device is a network device or host, looked up by name.
type Device struct {
	ID           uint       `gorm:"primaryKey;column:id"`
	Name         string     `gorm:"column:name;type:varchar(64);uniqueIndex"`
	AssetTag     *string    `gorm:"column:asset_tag;type:varchar(50);index"`
	PlatformID   *uint      `gorm:"column:platform_id"`
	Platform     *Platform  `gorm:"foreignKey:PlatformID"`
	DeviceTypeID uint       `gorm:"column:device_type_id"`
	DeviceType   DeviceType `gorm:"foreignKey:DeviceTypeID"`
	ClusterID    *uint      `gorm:"column:cluster_id"`
	Cluster      *Cluster   `gorm:"foreignKey:ClusterID"`
}

func (Device) TableName() string {
	return "dcim_device"
}

// Form factors assigned to interfaces.
const (
	FormFactorVirtual  = "virtual"
	FormFactorLAG      = "lag"
	FormFactorPhysical = "1000base-t"
)

// Interface is a device port, identified by (device, name).
type Interface struct {
	ID          uint        `gorm:"primaryKey;column:id"`
	DeviceID    uint        `gorm:"column:device_id;uniqueIndex:idx_interface_device_name"`
	Name        string      `gorm:"column:name;type:varchar(64);uniqueIndex:idx_interface_device_name"`
	MACAddress  string      `gorm:"column:mac_address;type:varchar(18)"`
	MTU         *int        `gorm:"column:mtu"`
	Description string      `gorm:"column:description;type:varchar(200)"`
	Enabled     bool        `gorm:"column:enabled"`
	FormFactor  string      `gorm:"column:form_factor;type:varchar(50)"`
	IPAddresses []IPAddress `gorm:"foreignKey:InterfaceID"`
}

func (Interface) TableName() string {
	return "dcim_interface"
}

// InterfaceConnection is an unordered physical link between two interfaces.
type InterfaceConnection struct {
	ID           uint      `gorm:"primaryKey;column:id"`
	InterfaceAID uint      `gorm:"column:interface_a_id;index"`
	InterfaceA   Interface `gorm:"foreignKey:InterfaceAID"`
	InterfaceBID uint      `gorm:"column:interface_b_id;index"`
	InterfaceB   Interface `gorm:"foreignKey:InterfaceBID"`
}

func (InterfaceConnection) TableName() string {
	return "dcim_interfaceconnection"
}

// Peer returns the other side of the connection.
func (c InterfaceConnection) Peer(interfaceID uint) uint {
	if c.InterfaceAID == interfaceID {
		return c.InterfaceBID
	}
	return c.InterfaceAID
}

// InventoryItem is a hardware part of a device, identified by (device, name, serial).
type InventoryItem struct {
	ID             uint          `gorm:"primaryKey;column:id"`
	DeviceID       uint          `gorm:"column:device_id;index:idx_inventory_identity"`
	Name           string        `gorm:"column:name;type:varchar(100);index:idx_inventory_identity"`
	Serial         string        `gorm:"column:serial;type:varchar(50);index:idx_inventory_identity"`
	PartID         string        `gorm:"column:part_id;type:varchar(50)"`
	Description    string        `gorm:"column:description;type:varchar(200)"`
	ManufacturerID *uint         `gorm:"column:manufacturer_id"`
	Manufacturer   *Manufacturer `gorm:"foreignKey:ManufacturerID"`
}

func (InventoryItem) TableName() string {
	return "dcim_inventoryitem"
}
