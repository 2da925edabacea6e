// Package internal holds the institute API server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, response shaping, and routing
// - domain: business logic and domain models, one package per entity
// - storage: Postgres repositories and schema migrations
// - auth, config, metrics, uploads: shared infrastructure
//
// Code in internal/ is not meant for external import.
package internal
