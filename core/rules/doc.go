// Package rules holds the ordered rule index that maps a (vendor, command) pair
// to a template and a handler identifier.
//
// Patterns are regular expressions anchored at the start only, so "Cisco" matches
// "Cisco Systems". Command patterns accept the clitable completion syntax:
// "sh[[ow]] int[[erfaces]]" matches "sh int", "show int" and "show interfaces".
//
// The index is loaded once at startup and is safe for concurrent reads.
//
//	Template, Vendor, Command, Function
//	cisco_ios_show_interfaces.textfsm, Cisco, sh[[ow]] int[[erfaces]], syncInterfaces
package rules
