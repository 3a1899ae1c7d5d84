package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTitle_Untitled(t *testing.T) {
	assert.Equal(t, "Untitled", Note{}.DisplayTitle())
	assert.Equal(t, "Untitled", Note{Title: "   "}.DisplayTitle())
	assert.Equal(t, "Plans", Note{Title: "Plans"}.DisplayTitle())
	assert.Equal(t, "Untitled", Task{}.DisplayTitle())
}

func TestJournal_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Monday, January 15, 2024", Journal{Day: "2024-01-15"}.DisplayTitle())
	assert.Equal(t, "garbage", Journal{Day: "garbage"}.DisplayTitle())
}

func TestParseJournalDay(t *testing.T) {
	day, ok := ParseJournalDay("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, "2024-02-29", day)

	for _, bad := range []string{"", "2023-02-29", "2024-13-01", "24-01-01", "today"} {
		_, ok := ParseJournalDay(bad)
		assert.False(t, ok, bad)
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15", Today(now, nil))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-01-16", Today(now, tokyo))
}

func TestTaskStatus_NextWraps(t *testing.T) {
	assert.Equal(t, StatusTodo, StatusBacklog.Next())
	assert.Equal(t, StatusBacklog, StatusWontDo.Next())
	assert.Equal(t, StatusBacklog, TaskStatus("bogus").Next())
	assert.False(t, TaskStatus("bogus").Valid())
	assert.Equal(t, PriorityUrgent, PriorityNone.Next())
	assert.True(t, PriorityLow.Valid())
}

func TestSnapshotKey(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.FixedZone("X", 3600))
	key := SnapshotKey("0190f1c5-6d4c-7d2b-9a3e-2f1c5b0a7e11", at)

	assert.Equal(t, "0190f1c5-6d4c-7d2b-9a3e-2f1c5b0a7e11+2024-01-15T09:30:00.123456789Z", key)
	assert.Equal(t, "0190f1c5-6d4c-7d2b-9a3e-2f1c5b0a7e11", SnapshotEntityID(key))
	assert.Equal(t, key, Snapshot{ID: "0190f1c5-6d4c-7d2b-9a3e-2f1c5b0a7e11", UpdatedAt: at}.Key())
	assert.Equal(t, "plain", SnapshotEntityID("plain"))
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "", "")
	assert.Contains(t, info.String(), "Build version: N/A")
}
