// Package store is the boundary to the inventory database.
//
// Store lists every lookup and write the collector performs; GormStore implements
// it with GORM on MySQL (or SQLite in tests). The store is never asked to delete.
//
// Batches run inside Transaction; reconcilers open a nested Transaction per item
// so GORM savepoints roll back a single bad item without aborting the batch.
//
// ComposeComments and PreservedNotes keep the legacy VM comments format (disk block,
// separator, free text) at the store boundary while the disks themselves are kept
// structured in VirtualMachine.Disks.
package store
