// Package uptime keeps the process uptime gauge current.
//
// A single background goroutine sets the gauge every interval for the life
// of the process. Stop exists so shutdown and tests can end it cleanly.
package uptime
