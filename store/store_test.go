package store

import (
	"testing"

	"agencybuilder/coach/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	kv := NewMemory()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", []byte("v1")))
	value, ok, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), value)

	// Overwrite wins.
	require.NoError(t, kv.Set("k", []byte("v2")))
	value, _, _ = kv.Get("k")
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, kv.Delete("k"))
	_, ok, _ = kv.Get("k")
	assert.False(t, ok)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set("k", []byte("abc")))

	value, _, _ := kv.Get("k")
	value[0] = 'z'

	again, _, _ := kv.Get("k")
	assert.Equal(t, []byte("abc"), again)
}

func sampleDocument() *types.UserDocument {
	feedback := "keep going"
	return &types.UserDocument{
		History: []types.DayEntry{
			{
				Date: "2024/1/1", Mood: 6,
				Tasks:          []types.Task{{ID: "t1", Text: "say it", Category: types.CategoryVoicing, Completed: true, UserResponse: "I did"}},
				JournalEntry:   "a real day",
				ActionTaken:    "walked",
				AIFeedback:     &feedback,
				NextDayPlan:    []types.Task{{ID: "t2", Text: "choose", Category: types.CategoryDecision}},
				SelfWorthScore: 6,
			},
		},
		TodayTasks:   []types.Task{{ID: "t2", Text: "choose", Category: types.CategoryDecision}},
		Draft:        types.Draft{Mood: 4, JournalEntry: "in progress", ActionTaken: ""},
		LastTaskDate: "2024/1/2",
	}
}

func TestUserDocumentRoundTrip(t *testing.T) {
	kv := NewMemory()

	doc := sampleDocument()
	require.NoError(t, SaveUserDocument(kv, "a@b.c", doc))

	loaded, err := LoadUserDocument(kv, "a@b.c")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, doc, loaded, "persist then load must be field-for-field equal")
}

func TestLoadUserDocumentAbsent(t *testing.T) {
	kv := NewMemory()

	doc, err := LoadUserDocument(kv, "nobody@b.c")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestLoadUserDocumentCorruptTreatedAsAbsent(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, kv.Set(DocumentKey("a@b.c"), []byte("{not json")))

	doc, err := LoadUserDocument(kv, "a@b.c")
	require.NoError(t, err)
	assert.Nil(t, doc, "an unreadable document falls through to first-time init")
}

func TestDocumentKeysAreNamespaced(t *testing.T) {
	kv := NewMemory()
	require.NoError(t, SaveUserDocument(kv, "a@b.c", sampleDocument()))

	other, err := LoadUserDocument(kv, "x@y.z")
	require.NoError(t, err)
	assert.Nil(t, other, "documents never collide across identifiers")
}
