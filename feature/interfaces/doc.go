// Package interfaces reconciles parsed interface records with the inventory.
//
// Each record creates or updates the interface (device, name): MAC address,
// description (only when the template provides one), MTU (only when
// 0 < mtu <= MaxMTU), enabled state (the state contains "up") and form factor
// (virtual, then aggregate, then physical). Addresses are attached once per
// interface.
//
// A description of the form "<asset-tag>|<port>" links the interface to the
// port of that exact name on the device carrying the asset tag. Link misses are
// logged and recorded as outcomes, never as failures of the batch.
//
// Records run in their own savepoint; the batch succeeds when at least one
// interface was saved.
package interfaces
