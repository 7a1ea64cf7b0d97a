// Package sink abstracts the destination of generated catalog files.
//
// Generators assemble each table fully in memory and hand the text to a
// Sink in a single Write call, so a target is either absent, complete, or
// untouched. The write reports a tri-state outcome (created, overwritten,
// skipped) instead of treating an existing target as an error.
//
// # Implementations
//
//   - Local: writes files under a base directory on the local filesystem.
//   - Object: publishes files to an object storage bucket via core/storage.
package sink
