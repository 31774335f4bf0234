package replacement

import (
	"fmt"
	"slices"
	"strconv"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Step is the state after applying one reference.
type Step struct {
	Frames         []util.PageID // resident pages after the reference, display order
	Fault          bool          // page was not resident before this reference
	ReferenceIndex int
	Page           util.PageID // page referenced at this step
	Evicted        bool
	Victim         util.PageID // set only when Evicted
}

// Result is the full timeline of one run. It is never modified after Simulate returns.
type Result struct {
	Policy     Policy
	Capacity   int
	Sequence   []util.PageID
	Steps      []Step
	PageFaults int
	HitRatio   float64
}

func (r *Result) Len() int {
	return len(r.Steps)
}

func (r *Result) Hits() int {
	return len(r.Steps) - r.PageFaults
}

func (r *Result) FaultRatio() float64 {
	return float64(r.PageFaults) / float64(len(r.Steps))
}

// Simulate runs policy over refs with capacity frames. Policy names match in any letter case.
// Inputs are validated up front; on error no partial result is produced.
func Simulate(refs []util.PageID, capacity int, policy Policy) (*Result, error) {
	if capacity <= 0 {
		return nil, util.NewValidationError(util.ErrTypeInvalidCapacity, "frameCount", strconv.Itoa(capacity))
	}
	if len(refs) == 0 {
		return nil, util.NewValidationError(util.ErrTypeInvalidInput, "referenceString", "")
	}
	replacer, err := newReplacer(policy)
	if err != nil {
		return nil, err
	}
	policy = policy.canonical()

	seq := slices.Clone(refs)
	replacer.Init(seq, capacity)
	rs := NewReplacerShared(capacity)

	steps := make([]Step, 0, len(seq))
	faults := 0
	for i, p := range seq {
		step := Step{ReferenceIndex: i, Page: p}

		if !rs.contains(p) {
			step.Fault = true
			faults++

			if rs.isFull() {
				pos, err := replacer.Victim(rs.frames, i)
				if err != nil {
					return nil, fmt.Errorf("[engine] [Simulate] %s victim at reference %d: %w", policy, i, err)
				}
				victim, err := rs.evictAt(pos)
				if err != nil {
					return nil, fmt.Errorf("[engine] [Simulate] %s evict position %d: %w", policy, pos, err)
				}
				step.Evicted = true
				step.Victim = victim
			}
			rs.insert(p)
		}

		step.Frames = rs.snapshot()
		steps = append(steps, step)

		replacer.Access(p, i)
	}

	// len(seq) > 0 is guaranteed by the validation above
	total := len(seq)
	return &Result{
		Policy:     policy,
		Capacity:   capacity,
		Sequence:   seq,
		Steps:      steps,
		PageFaults: faults,
		HitRatio:   float64(total-faults) / float64(total),
	}, nil
}

// Compare runs every registered policy over the same input.
func Compare(refs []util.PageID, capacity int) (map[Policy]*Result, error) {
	policies := Policies()
	results := make(map[Policy]*Result, len(policies))
	for _, p := range policies {
		res, err := Simulate(refs, capacity, p)
		if err != nil {
			return nil, err
		}
		results[p] = res
	}
	return results, nil
}
