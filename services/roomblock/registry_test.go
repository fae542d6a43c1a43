package roomblock

import (
	"testing"
	"time"

	"hotelops/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testBlock(id, name string, start time.Time) *models.RoomBlock {
	return &models.RoomBlock{
		ID:        id,
		BlockName: name,
		GroupName: name + " group",
		EventType: models.EventTypeConference,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 3),
		Status:    models.BlockStatusActive,
		Rooms: []models.BlockRoom{
			{RoomID: id + "-r1", RoomNumber: "101", Status: models.RoomStatusBlocked},
		},
		TotalRooms:     1,
		AvailableRooms: 1,
	}
}

func TestRegistryUpsertIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	block := testBlock("b1", "Acme Offsite", date(2024, 6, 10))

	reg.Upsert(block)
	reg.Upsert(block)

	assert.Equal(t, 1, reg.Len())
	got, ok := reg.Get("b1")
	require.True(t, ok)
	assert.Equal(t, "Acme Offsite", got.BlockName)
}

func TestRegistryUpsertReplacesWholesale(t *testing.T) {
	reg := NewRegistry()
	old := testBlock("b1", "Old Name", date(2024, 6, 10))
	old.SpecialInstructions = "late checkout"
	reg.Upsert(old)

	// The replacement omits SpecialInstructions; no merging may happen.
	reg.Upsert(testBlock("b1", "New Name", date(2024, 6, 10)))

	got, ok := reg.Get("b1")
	require.True(t, ok)
	assert.Equal(t, "New Name", got.BlockName)
	assert.Empty(t, got.SpecialInstructions)
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(testBlock("b1", "Acme", date(2024, 6, 10)))

	got, _ := reg.Get("b1")
	got.Rooms[0].Status = models.RoomStatusReleased
	got.BlockName = "mutated"

	fresh, _ := reg.Get("b1")
	assert.Equal(t, "Acme", fresh.BlockName)
	assert.Equal(t, models.RoomStatusBlocked, fresh.Rooms[0].Status)
}

func TestRegistryFilterSortsByStartDate(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(testBlock("late", "Late", date(2024, 8, 1)))
	reg.Upsert(testBlock("early", "Early", date(2024, 6, 1)))
	reg.Upsert(testBlock("mid", "Mid", date(2024, 7, 1)))

	out := reg.Filter(models.BlockFilter{})
	require.Len(t, out, 3)
	assert.Equal(t, []string{"early", "mid", "late"}, []string{out[0].ID, out[1].ID, out[2].ID})

	desc := reg.Filter(models.BlockFilter{Descending: true})
	assert.Equal(t, []string{"late", "mid", "early"}, []string{desc[0].ID, desc[1].ID, desc[2].ID})
}

func TestRegistryFilterBreaksTiesByInsertionOrder(t *testing.T) {
	reg := NewRegistry()
	sameDay := date(2024, 6, 10)
	reg.Upsert(testBlock("first", "First", sameDay))
	reg.Upsert(testBlock("second", "Second", sameDay))
	reg.Upsert(testBlock("third", "Third", sameDay))

	out := reg.Filter(models.BlockFilter{})
	require.Len(t, out, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

func TestRegistryFilterSearchAndFields(t *testing.T) {
	reg := NewRegistry()
	wedding := testBlock("w1", "Smith Wedding", date(2024, 6, 10))
	wedding.EventType = models.EventTypeWedding
	wedding.ContactPerson = &models.ContactPerson{Name: "Jordan Smith"}
	reg.Upsert(wedding)

	conf := testBlock("c1", "Tech Summit", date(2024, 6, 12))
	reg.Upsert(conf)

	// Case-insensitive search over block name, group name and contact name.
	assert.Len(t, reg.Filter(models.BlockFilter{Search: "smith"}), 1)
	assert.Len(t, reg.Filter(models.BlockFilter{Search: "JORDAN"}), 1)
	assert.Len(t, reg.Filter(models.BlockFilter{Search: "summit group"}), 1)
	assert.Empty(t, reg.Filter(models.BlockFilter{Search: "nobody"}))

	assert.Len(t, reg.Filter(models.BlockFilter{EventType: models.EventTypeWedding}), 1)
	assert.Len(t, reg.Filter(models.BlockFilter{Status: models.BlockStatusActive}), 2)
	assert.Empty(t, reg.Filter(models.BlockFilter{Status: models.BlockStatusCancelled}))
}

func TestRegistryRemove(t *testing.T) {
	reg := NewRegistry()
	reg.Upsert(testBlock("b1", "Acme", date(2024, 6, 10)))
	reg.Remove("b1")

	_, ok := reg.Get("b1")
	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}
