package models

// All returns every model, in dependency order, for migrations and schema checks.
func All() []any {
	return []any{
		&Manufacturer{},
		&Platform{},
		&DeviceType{},
		&DeviceRole{},
		&Cluster{},
		&Device{},
		&Interface{},
		&IPAddress{},
		&InterfaceConnection{},
		&InventoryItem{},
		&VirtualMachine{},
	}
}
