package replacement

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// LRUReplacer evicts the resident page with the smallest last-referenced index.
type LRUReplacer struct {
	lastUsed map[util.PageID]int
}

func (lr *LRUReplacer) Init(refs []util.PageID, capacity int) {
	lr.lastUsed = make(map[util.PageID]int, capacity)
}

// Victim scans frames in order with a strict comparison, so the first page
// holding the minimum wins. Indices are unique per page, so a tie never occurs.
func (lr *LRUReplacer) Victim(frames []util.PageID, refIdx int) (int, error) {
	if len(frames) == 0 {
		return -1, util.ErrInvalidEviction
	}

	victim := -1
	oldest := refIdx
	for pos, p := range frames {
		used, ok := lr.lastUsed[p]
		if !ok {
			return -1, fmt.Errorf("[lru] [Victim] page %q resident but never accessed: %w", p, util.ErrInvalidEviction)
		}
		if victim == -1 || used < oldest {
			victim = pos
			oldest = used
		}
	}
	return victim, nil
}

func (lr *LRUReplacer) Access(pageID util.PageID, refIdx int) {
	lr.lastUsed[pageID] = refIdx
}
