package models

// IPAddress is an address with prefix length, optionally bound to an interface.
type IPAddress struct {
	ID          uint   `gorm:"primaryKey;column:id"`
	Address     string `gorm:"column:address;type:varchar(64);index"`
	InterfaceID *uint  `gorm:"column:interface_id;index"`
}

func (IPAddress) TableName() string {
	return "ipam_ipaddress"
}
