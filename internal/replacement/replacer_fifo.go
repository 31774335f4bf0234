package replacement

import util "github.com/bietkhonhungvandi212/pagesim/internal/utils"

// FIFOReplacer evicts the page that has been resident the longest.
// Frames are kept in insertion order and hits never reorder them, so the queue head is frame 0.
type FIFOReplacer struct{}

func (f *FIFOReplacer) Init(refs []util.PageID, capacity int) {}

func (f *FIFOReplacer) Victim(frames []util.PageID, refIdx int) (int, error) {
	if len(frames) == 0 {
		return -1, util.ErrInvalidEviction
	}
	return 0, nil
}

// Access is a no-op: a hit does not move a page in the queue.
func (f *FIFOReplacer) Access(pageID util.PageID, refIdx int) {}
