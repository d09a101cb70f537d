package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parking-zone-gateway/internal/upstream"
)

func slot(id, blockID, blockName string, floor int, vehicleType string) upstream.Slot {
	return upstream.Slot{
		ID:          id,
		SlotNumber:  "S-" + id,
		Block:       upstream.Block{ID: blockID, BlockName: blockName},
		Floor:       floor,
		VehicleType: vehicleType,
		Status:      "available",
	}
}

func TestGroupSlots_ByBlock(t *testing.T) {
	slots := []upstream.Slot{
		slot("1", "b1", "Block A", 1, "car"),
		slot("2", "b2", "Block B", 1, "car"),
		slot("3", "b1", "Block A", 2, "car"),
	}

	grouped := GroupSlots(slots)
	require.Len(t, grouped, 1)

	carBlocks := grouped["car"]
	require.Len(t, carBlocks, 2, "two distinct blocks expected")

	var seen int
	for _, bg := range carBlocks {
		for _, fg := range bg.Floors {
			for _, s := range fg.Slots {
				seen++
				assert.Equal(t, bg.BlockID, s.Block.ID, "slot must sit under its own block")
			}
		}
	}
	assert.Equal(t, len(slots), seen, "no slot dropped or duplicated")
}

func TestGroupSlots_FloorsDescending(t *testing.T) {
	slots := []upstream.Slot{
		slot("1", "b1", "Block A", 1, "truck"),
		slot("2", "b1", "Block A", 3, "truck"),
		slot("3", "b1", "Block A", 2, "truck"),
	}

	grouped := GroupSlots(slots)
	blocks := grouped["truck"]
	require.Len(t, blocks, 1)

	floors := blocks[0].Floors
	require.Len(t, floors, 3)
	assert.Equal(t, 3, floors[0].Floor)
	assert.Equal(t, 2, floors[1].Floor)
	assert.Equal(t, 1, floors[2].Floor)
}

func TestGroupSlots_VehicleTypeSplit(t *testing.T) {
	slots := []upstream.Slot{
		slot("1", "b1", "Block A", 1, "car"),
		slot("2", "b1", "Block A", 1, "motorcycle"),
		slot("3", "b1", "Block A", 1, "truck"),
	}

	grouped := GroupSlots(slots)
	assert.Len(t, grouped, 3)
	assert.Len(t, grouped["car"], 1)
	assert.Len(t, grouped["motorcycle"], 1)
	assert.Len(t, grouped["truck"], 1)
}

func TestGroupSlots_UntypedSlotDefaultsToCar(t *testing.T) {
	slots := []upstream.Slot{
		slot("1", "b1", "Block A", 1, ""),
		slot("2", "b1", "Block A", 1, "car"),
	}

	grouped := GroupSlots(slots)
	require.Len(t, grouped, 1)
	require.Len(t, grouped["car"], 1)
	assert.Len(t, grouped["car"][0].Floors[0].Slots, 2)
}

func TestGroupSlots_Empty(t *testing.T) {
	assert.Empty(t, GroupSlots(nil))
}
