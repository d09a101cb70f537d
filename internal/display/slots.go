package display

import (
	"sort"

	"parking-zone-gateway/internal/upstream"
)

// FloorGroup is the slots of one floor within a block.
type FloorGroup struct {
	Floor int             `json:"floor"`
	Slots []upstream.Slot `json:"slots"`
}

// BlockGroup is one block's slots, split by floor. Floors are listed in
// descending numeric order.
type BlockGroup struct {
	BlockID   string       `json:"blockId"`
	BlockName string       `json:"blockName"`
	Floors    []FloorGroup `json:"floors"`
}

// GroupSlots organizes a flat slot list for nested rendering: vehicle type,
// then block, then floor. Every input slot appears exactly once; slots with
// no vehicle type fall under DefaultVehicleType. Blocks keep their
// first-seen order, slots their input order within a floor.
func GroupSlots(slots []upstream.Slot) map[string][]BlockGroup {
	type blockAccum struct {
		name   string
		order  int
		floors map[int][]upstream.Slot
	}
	byType := make(map[string]map[string]*blockAccum)
	blockCount := 0

	for _, slot := range slots {
		vt := NormalizeVehicleType(slot.VehicleType)
		if vt == "" {
			vt = DefaultVehicleType
		}

		blocks, ok := byType[vt]
		if !ok {
			blocks = make(map[string]*blockAccum)
			byType[vt] = blocks
		}

		acc, ok := blocks[slot.Block.ID]
		if !ok {
			acc = &blockAccum{
				name:   slot.Block.BlockName,
				order:  blockCount,
				floors: make(map[int][]upstream.Slot),
			}
			blocks[slot.Block.ID] = acc
			blockCount++
		}
		acc.floors[slot.Floor] = append(acc.floors[slot.Floor], slot)
	}

	grouped := make(map[string][]BlockGroup, len(byType))
	for vt, blocks := range byType {
		groups := make([]BlockGroup, 0, len(blocks))
		for blockID, acc := range blocks {
			floors := make([]int, 0, len(acc.floors))
			for floor := range acc.floors {
				floors = append(floors, floor)
			}
			sort.Sort(sort.Reverse(sort.IntSlice(floors)))

			bg := BlockGroup{
				BlockID:   blockID,
				BlockName: acc.name,
				Floors:    make([]FloorGroup, 0, len(floors)),
			}
			for _, floor := range floors {
				bg.Floors = append(bg.Floors, FloorGroup{Floor: floor, Slots: acc.floors[floor]})
			}
			groups = append(groups, bg)
		}
		sort.SliceStable(groups, func(i, j int) bool {
			return blocks[groups[i].BlockID].order < blocks[groups[j].BlockID].order
		})
		grouped[vt] = groups
	}
	return grouped
}
