// Package repositories implements SQLite persistence for lyrx entities.
//
//   - [PlayRepository] : play history, newest first, filterable by artist and lyrics outcome
//
// Rows are keyed by UUIDs from [shared.GenerateID]. Deletes are hard deletes: history is a log, not a cache.
package repositories
