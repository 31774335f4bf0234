package replacement

import util "github.com/bietkhonhungvandi212/pagesim/internal/utils"

// Replacer defines the contract for page replacement policies.
// The engine owns the resident frames; a Replacer only keeps its private bookkeeping.
type Replacer interface {
	// Init resets bookkeeping for a run over refs with the given frame capacity.
	Init(refs []util.PageID, capacity int)
	// Victim returns the position in frames of the page to evict while handling refIdx.
	// frames is read-only and always full when Victim is called.
	Victim(frames []util.PageID, refIdx int) (int, error)
	// Access is called once per reference, after fault handling, on hits and faults alike.
	Access(pageID util.PageID, refIdx int)
}
