// Package editor implements the autosaving editor session shared by notes,
// journal entries and task descriptions.
//
// A [Session] keeps the live title and content, applies every edit
// immediately and persists the entity once typing has paused. Entity types
// plug in through a [Capability]; the session itself does not know what it
// edits.
package editor
