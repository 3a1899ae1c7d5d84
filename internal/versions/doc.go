// Package versions lists the local snapshots of an entity, diffs them
// against the live document and drives the version browser panel.
package versions
