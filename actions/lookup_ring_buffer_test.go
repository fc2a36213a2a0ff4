package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkteam/uikit/actions"
)

type testRecord struct {
	ID   string
	Data string
}

func (r testRecord) Identity() string {
	return r.ID
}

func TestLookupRingBuffer_Basic(t *testing.T) {
	rb := actions.NewLookupRingBuffer[testRecord, string](3)

	assert.Equal(t, uint64(0), rb.Size())
	assert.Equal(t, uint64(3), rb.Capacity())
	assert.Empty(t, rb.GetRecords(10))

	rb.Add(testRecord{ID: "1", Data: "data1"})
	rb.Add(testRecord{ID: "2", Data: "data2"})

	assert.Equal(t, uint64(2), rb.Size())

	found, exists := rb.Lookup("2")
	assert.True(t, exists)
	assert.Equal(t, "data2", found.Data)

	// Oldest first
	records := rb.GetRecords(10)
	assert.Equal(t, []testRecord{{ID: "1", Data: "data1"}, {ID: "2", Data: "data2"}}, records)
}

func TestLookupRingBuffer_Overwrite(t *testing.T) {
	rb := actions.NewLookupRingBuffer[testRecord, string](3)

	for _, id := range []string{"1", "2", "3", "4"} {
		rb.Add(testRecord{ID: id})
	}

	assert.Equal(t, uint64(3), rb.Size())

	_, exists := rb.Lookup("1")
	assert.False(t, exists, "evicted record should not be found")

	for _, id := range []string{"2", "3", "4"} {
		_, exists := rb.Lookup(id)
		assert.True(t, exists, "record %s should be found", id)
	}

	records := rb.GetRecords(2)
	assert.Equal(t, []testRecord{{ID: "3"}, {ID: "4"}}, records)
}

func TestLookupRingBuffer_ReAddedIdentitySurvivesEviction(t *testing.T) {
	rb := actions.NewLookupRingBuffer[testRecord, string](2)

	rb.Add(testRecord{ID: "a", Data: "old"})
	rb.Add(testRecord{ID: "a", Data: "new"})
	// Evicts the first "a" slot, the lookup must still point at the newer one
	rb.Add(testRecord{ID: "b"})

	found, exists := rb.Lookup("a")
	assert.True(t, exists)
	assert.Equal(t, "new", found.Data)
}

func TestLookupRingBuffer_ZeroCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		actions.NewLookupRingBuffer[testRecord, string](0)
	})
}
