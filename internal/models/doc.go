// Package models defines the persisted entities of lyrx and the interfaces used to store them.
//
//   - [Play] : one track change seen by the display, with whether lyrics were found
//
// Persistent entities implement [Model] (ID, timestamps, validation).
// The [Repository] interface defines the standard operations for database access.
package models
