// Package domain holds the core types shared across the service.
package domain

// Item is a single integer-keyed string value
type Item struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}
