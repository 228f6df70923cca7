// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface, which defines its name, whether it is
// enabled and its route registration logic.
//
// # Manager
//
// The Manager holds the registered features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll(), in registration order
//
// Features such as 'collector' and 'integrity' are developed and tested in isolation
// and only meet in cmd/start.go.
package loader
