// Package exercises defines the exercise domain entity, the repository and service
// contracts for persisting it, and the typed errors the persistence layer surfaces.
package exercises
