// Package store defines the persistence contract for tasks. The service layer
// depends only on TaskStore and the sentinel errors declared here; the
// PostgreSQL implementation lives in internal/platform/postgres.
package store
