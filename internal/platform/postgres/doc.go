// Package postgres provides the PostgreSQL implementation of the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping between domain entities and database rows, translation
// of driver errors into store sentinels, and owns the embedded schema migrations.
package postgres
