// Package persistence provides the database repository implementation for exercises.
// It uses GORM as the ORM layer over a SQLite (or PostgreSQL) backing store, owns the
// connection pool per repository handle and translates storage failures into the
// domain error taxonomy.
package persistence
