// Package sqlstore implements the interfaces from internal/store on top of
// database/sql. The same SQL runs on PostgreSQL (through pgx) and on SQLite
// (through go-sqlite3); only the embedded migrations differ per dialect.
//
// Driver errors are translated with MapError so callers only ever see the
// sentinel errors from internal/store.
package sqlstore
