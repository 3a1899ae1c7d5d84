// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the entities and transport DTOs shared by the
// Summarium server and terminal client.
package models

// EntityKind names one of the independently persisted entity types.
type EntityKind string

const (
	KindNote     EntityKind = "note"
	KindJournal  EntityKind = "journal"
	KindTask     EntityKind = "task"
	KindActivity EntityKind = "activity"
)

// UntitledTitle is displayed wherever an entity has an empty title.
const UntitledTitle = "Untitled"

// JournalDayLayout is the calendar-date format of [Journal.Day].
const JournalDayLayout = "2006-01-02"
