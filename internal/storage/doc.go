// Package storage provides the persistence ports used by the editing
// core's collaborators.
//
// The core itself never touches the filesystem. Draft and session state is
// reached through the Store interface, keyed by file path; committed
// content is written through the Saver interface. The file-backed
// implementations here keep the store as a single JSON document and save
// files with a write-temp-then-rename sequence so a crash never leaves a
// half-written file behind.
package storage
