package postgres

import "embed"

// Migrations holds the goose SQL migrations for the task schema.
// Files live under migrations/ and are applied in version order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that goose reads from.
const MigrationsDir = "migrations"

// MigrationTableName is the goose version table used by this service.
const MigrationTableName = "schema_migrations"
