// Package inventory reconciles parsed hardware inventory with the inventory store.
//
// Items are identified by (device, name, serial); present items are skipped and
// never updated, missing ones are created with part id, description and vendor.
// The name falls back to the CASE field and quotes are stripped from names and
// descriptions.
package inventory
