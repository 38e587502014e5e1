// Package items implements the item use cases behind the HTTP API.
//
// The service is a thin pass-through to the configured ItemStore. Storage
// failures are counted in the db error metric and logged with their cause
// before being returned, so the API layer can answer with a generic error.
package items
