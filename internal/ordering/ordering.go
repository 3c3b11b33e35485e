// Package ordering computes dense position assignments for board records:
// tasks within a column and columns within a project. All functions are
// pure; callers load sibling snapshots, plan the new ordering here, and
// persist the result.
package ordering

import "github.com/google/uuid"

// Placement is a computed (column, position) assignment for one record.
type Placement struct {
	ID       uuid.UUID
	ColumnID uuid.UUID
	Position int
}

// Clamp bounds a requested index into [0, siblingCount]. Clients send raw
// drag-and-drop coordinates, so negative and far-out-of-range indices are
// normal input: negative lands at the front, overflow lands last.
func Clamp(requested, siblingCount int) int {
	if requested < 0 {
		return 0
	}
	if requested > siblingCount {
		return siblingCount
	}
	return requested
}

// NextPosition returns the append-at-end position for a new sibling given
// the current maximum position, which is -1 when no siblings exist.
func NextPosition(maxPosition int) int {
	return maxPosition + 1
}

// PlanSameColumn places moved at the requested index among its column
// siblings and renumbers the whole column densely. siblings must be the
// column's tasks ordered ascending by position, excluding moved itself.
// The returned placements cover every sibling plus moved.
func PlanSameColumn(columnID uuid.UUID, siblings []uuid.UUID, moved uuid.UUID, requested int) []Placement {
	ordered := insertAt(siblings, moved, Clamp(requested, len(siblings)))
	return renumber(columnID, ordered)
}

// PlanCrossColumn moves moved from its old column into newColumn at the
// requested index. oldSiblings are the old column's tasks excluding moved;
// newSiblings are the target column's current tasks (moved is not yet
// among them). Both must be ordered ascending by position. The first
// return value renumbers the old column's survivors to close the gap left
// by the departure; the second renumbers the target column including
// moved. A target column with no siblings yields moved alone at position
// 0, so moving into an unknown column succeeds rather than failing.
func PlanCrossColumn(oldColumnID, newColumnID uuid.UUID, oldSiblings, newSiblings []uuid.UUID, moved uuid.UUID, requested int) (oldPlan, newPlan []Placement) {
	oldPlan = renumber(oldColumnID, oldSiblings)
	ordered := insertAt(newSiblings, moved, Clamp(requested, len(newSiblings)))
	newPlan = renumber(newColumnID, ordered)
	return oldPlan, newPlan
}

// SubsetOrder maps each id to its index within the supplied ordered list.
// A list naming only a subset of a project's columns is a partial reorder
// of just those members; ids not named keep their current positions.
func SubsetOrder(ordered []uuid.UUID) map[uuid.UUID]int {
	positions := make(map[uuid.UUID]int, len(ordered))
	for i, id := range ordered {
		positions[id] = i
	}
	return positions
}

func insertAt(ids []uuid.UUID, id uuid.UUID, idx int) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids)+1)
	out = append(out, ids[:idx]...)
	out = append(out, id)
	out = append(out, ids[idx:]...)
	return out
}

func renumber(columnID uuid.UUID, ordered []uuid.UUID) []Placement {
	placements := make([]Placement, len(ordered))
	for i, id := range ordered {
		placements[i] = Placement{ID: id, ColumnID: columnID, Position: i}
	}
	return placements
}
