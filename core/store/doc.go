// Package store defines the boundary to the host CAD document's material
// library.
//
// Materials carry an appearance asset tree modeled as a tagged variant
// (string, double, boolean, reference, nested asset, list) over the property
// kinds the host layer actually uses. The Store interface exposes the three
// operations the reconciliation engine needs: find by name pattern, create
// from a template with procedural parameter edits, and delete. Transactor
// scopes a batch of mutations to one commit-or-rollback unit.
//
// # Implementations
//
//   - DBStore: gorm-backed reference implementation persisting materials in
//     a relational table, for deployments without a live CAD session.
//   - mocks: testify mocks for handler and service tests.
//
// A real deployment backed by an interactive CAD host implements the same
// interfaces over its document API.
package store
