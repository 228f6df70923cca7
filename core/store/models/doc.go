// Package models contains the GORM models of the inventory store.
//
// Table names follow the dcim_/ipam_/virtualization_ layout of the inventory
// database the collector writes to. The models are also the source of truth for
// the schema integrity check.
package models
