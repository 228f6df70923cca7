// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation. Accepts "Token <key>", "Bearer <key>" or X-API-Key.
//     An empty key disables the check.
//   - rayid: assigns a RayID to every request, stores it in locals under "ray_id"
//     and echoes it in the X-Ray-ID response header.
package middleware
