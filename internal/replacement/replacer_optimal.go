package replacement

import (
	"fmt"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// noFutureUse marks a page that is never referenced again.
const noFutureUse = -1

// OptimalReplacer implements Belady's policy: evict the page whose next use is furthest away.
//
// nextUse[i] is the index of the next reference to refs[i] after i, built with one backward
// scan. The index stored for a resident page on its last access stays valid until the page is
// referenced again, so the lookahead costs O(capacity) per fault.
type OptimalReplacer struct {
	nextUse []int
	nextOf  map[util.PageID]int
}

func (op *OptimalReplacer) Init(refs []util.PageID, capacity int) {
	op.nextUse = make([]int, len(refs))
	op.nextOf = make(map[util.PageID]int, capacity)

	seen := make(map[util.PageID]int)
	for i := len(refs) - 1; i >= 0; i-- {
		if next, ok := seen[refs[i]]; ok {
			op.nextUse[i] = next
		} else {
			op.nextUse[i] = noFutureUse
		}
		seen[refs[i]] = i
	}
}

// Victim returns the first page with no future use; otherwise the furthest next use.
func (op *OptimalReplacer) Victim(frames []util.PageID, refIdx int) (int, error) {
	if len(frames) == 0 {
		return -1, util.ErrInvalidEviction
	}

	victim := -1
	furthest := -1
	for pos, p := range frames {
		next, ok := op.nextOf[p]
		if !ok {
			return -1, fmt.Errorf("[optimal] [Victim] page %q resident but never accessed: %w", p, util.ErrInvalidEviction)
		}
		if next == noFutureUse {
			return pos, nil
		}
		if next > furthest {
			victim = pos
			furthest = next
		}
	}
	return victim, nil
}

func (op *OptimalReplacer) Access(pageID util.PageID, refIdx int) {
	op.nextOf[pageID] = op.nextUse[refIdx]
}
