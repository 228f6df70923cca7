// Package vms reconciles virtual machines reported by a hypervisor host.
//
// VMs live in the cluster of the reporting device; a device without cluster
// is rejected with reconcile.ErrNoClusterAssigned and nothing is written.
// Every VM gets the configured platform and role (Linux/Server by default),
// memory in MB (reported KB / 1024) and its vCPU count.
//
// Disks arrive as three lists of fragments (DISK_NAME, DISK_SIZE, DISK_PATH),
// each entry carrying a disk index and one attribute. MergeDisks joins them by
// index; the VM disk size is the truncated sum of the exact per-disk sizes.
// Disks are stored structured and rendered into the comments ahead of the
// preserved free text.
package vms
