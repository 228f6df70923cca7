// Package integrity provides health checks of the collector setup.
//
// # Checks Provided
//
//   - Templates: every template named by the rule index loads and compiles, and
//     every handler it names is registered.
//   - Server: the connected inventory database carries the columns (and declared
//     types) of the GORM models.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/templates : Runs the rule index check.
//   - GET /integrity/server : Runs the schema check.
package integrity
