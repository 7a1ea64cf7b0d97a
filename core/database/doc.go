// Package database manages the relational database connection used by the
// database-backed material store (core/store.DBStore).
//
// The connection is established eagerly with a ping so misconfiguration
// surfaces at startup, with conservative pool settings and I/O timeouts
// baked into the DSN.
package database
