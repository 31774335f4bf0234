package reference

import (
	"strconv"
	"strings"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Sequence is an ordered, non-empty list of page references. Entries may repeat.
type Sequence []util.PageID

// Parse splits raw on whitespace; each token becomes one page verbatim.
func Parse(raw string) (Sequence, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, util.NewValidationError(util.ErrTypeInvalidInput, "referenceString", "")
	}
	return Sequence(util.PageIDs(tokens...)), nil
}

// ParseCapacity reads a frame count. Non-numeric, zero and negative values are rejected.
func ParseCapacity(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n <= 0 {
		return 0, util.NewValidationError(util.ErrTypeInvalidCapacity, "frameCount", raw)
	}
	return n, nil
}

func (s Sequence) String() string {
	return util.JoinPageIDs(s)
}

// Distinct returns the pages in order of first appearance.
func (s Sequence) Distinct() []util.PageID {
	seen := make(map[util.PageID]struct{}, len(s))
	out := make([]util.PageID, 0, len(s))
	for _, p := range s {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
