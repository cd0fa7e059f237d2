// Package middleware groups the Fiber middleware of the HTTP surface.
//
//   - auth: X-API-Key check, skipped when no key is configured.
//   - rayid: assigns a RayID to every request (Locals "ray_id" and the X-Ray-ID
//     response header) so logger.WithRayID can tag request logs.
package middleware
