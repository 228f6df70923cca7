package models

// Disk is one virtual disk of a VM, merged from its name, size and path fragments.
type Disk struct {
	Index     string `json:"index"`
	Name      string `json:"name,omitempty"`
	Path      string `json:"path,omitempty"`
	SizeBytes int64  `json:"size_bytes"`
}

// SizeGB returns the size in GiB, un-truncated.
func (d Disk) SizeGB() float64 {
	return float64(d.SizeBytes) / (1 << 30)
}

// VirtualMachine is identified by name within a cluster.
type VirtualMachine struct {
	ID         uint   `gorm:"primaryKey;column:id"`
	ClusterID  uint   `gorm:"column:cluster_id;uniqueIndex:idx_vm_cluster_name"`
	Name       string `gorm:"column:name;type:varchar(64);uniqueIndex:idx_vm_cluster_name"`
	PlatformID *uint  `gorm:"column:platform_id"`
	RoleID     *uint  `gorm:"column:role_id"`
	Memory     int    `gorm:"column:memory"` // MB
	VCPUs      int    `gorm:"column:vcpus"`
	Disk       int    `gorm:"column:disk"` // GB
	Disks      []Disk `gorm:"column:disks;type:text;serializer:json"`
	Comments   string `gorm:"column:comments;type:text"`
}

func (VirtualMachine) TableName() string {
	return "virtualization_virtualmachine"
}
