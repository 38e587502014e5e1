// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Item storage and lookup
//   - Health and version checks
//   - Prometheus metrics
//
// Every request, including unmatched routes and recovered panics, is counted
// and timed by the metrics middleware. The endpoint label is the route
// template (for example "/item/:item_id"), not the raw request path; requests
// that match no route are labelled "unmatched".
package http
