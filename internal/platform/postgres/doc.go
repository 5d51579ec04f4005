// Package postgres provides the PostgreSQL implementation of the card
// persistence gateway defined in internal/store, together with the embedded
// goose migrations that create its schema.
package postgres
