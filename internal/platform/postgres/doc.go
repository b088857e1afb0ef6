// Package postgres implements the internal/store interfaces on PostgreSQL
// via database/sql and the pgx driver. It owns query construction, row
// scanning, and the mapping of Postgres constraint violations onto store
// sentinel errors.
package postgres
