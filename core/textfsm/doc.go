// Package textfsm adapts the gotextfsm engine to the collector.
//
// An Engine reads templates from a Source (a local directory or an object storage
// bucket), validates and caches their text, and compiles a fresh state machine for
// every Parse call so concurrent requests never share parser state.
//
// Parsed rows are returned as Records with upper-case keys. Values are a string,
// a []string for List values, or a []map[string]string for List values with
// nested named groups. Record accessors take alias keys and tolerate absence.
package textfsm
