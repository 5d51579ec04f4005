// Package store defines the persistence gateway for issued cards.
// Implementations live under internal/platform and are injected into the
// service layer, which never depends on a specific storage technology.
package store
