package replacement

import (
	"slices"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// ReplacerShared holds the resident set every policy steps over.
// frames keeps display order: insertion appends, eviction closes the gap.
type ReplacerShared struct {
	frames   []util.PageID
	resident map[util.PageID]struct{}
	capacity int
}

// NewReplacerShared initializes an empty resident set.
func NewReplacerShared(capacity int) *ReplacerShared {
	if capacity <= 0 {
		panic(util.ErrInvalidCapacity)
	}
	return &ReplacerShared{
		frames:   make([]util.PageID, 0, capacity),
		resident: make(map[util.PageID]struct{}, capacity),
		capacity: capacity,
	}
}

func (rs *ReplacerShared) contains(pageID util.PageID) bool {
	_, ok := rs.resident[pageID]
	return ok
}

func (rs *ReplacerShared) isFull() bool {
	return len(rs.frames) >= rs.capacity
}

func (rs *ReplacerShared) insert(pageID util.PageID) {
	rs.frames = append(rs.frames, pageID)
	rs.resident[pageID] = struct{}{}
}

// evictAt removes the page at pos and returns it.
func (rs *ReplacerShared) evictAt(pos int) (util.PageID, error) {
	if pos < 0 || pos >= len(rs.frames) {
		return "", util.ErrInvalidEviction
	}
	victim := rs.frames[pos]
	rs.frames = slices.Delete(rs.frames, pos, pos+1)
	delete(rs.resident, victim)
	return victim, nil
}

// snapshot copies frames so recorded steps never alias the live set.
func (rs *ReplacerShared) snapshot() []util.PageID {
	return slices.Clone(rs.frames)
}

func (rs *ReplacerShared) Size() int {
	return len(rs.frames)
}
