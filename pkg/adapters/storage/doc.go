// Package storage provides item storage implementations.
//
// Implementations:
//   - sqlite: embedded SQLite database, the durable store
//   - redis: Redis cache tier with TTL
//   - tiered: write-through composition of a cache tier over a durable store
//   - memory: In-memory for testing
package storage
