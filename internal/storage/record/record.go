package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// hitRatioTolerance absorbs rounding by writers that compute the ratio differently
const hitRatioTolerance = 1e-9

// State is one timeline entry as persisted and exported.
type State struct {
	Frames         []string `json:"frames"`
	PageFault      bool     `json:"pageFault"`
	ReferenceIndex int      `json:"referenceIndex"`
}

// Record is the serializable summary of a run. Field names are part of the file format.
type Record struct {
	Timestamp       int64   `json:"timestamp"` // epoch millis
	Algorithm       string  `json:"algorithm"`
	ReferenceString string  `json:"referenceString"`
	FrameCount      int     `json:"frameCount"`
	PageFaults      int     `json:"pageFaults"`
	HitRatio        float64 `json:"hitRatio"`
	States          []State `json:"states"`
}

// FromResult builds the record of a run. referenceString is kept as the user typed it.
func FromResult(res *replacement.Result, referenceString string, at time.Time) *Record {
	states := make([]State, len(res.Steps))
	for i, step := range res.Steps {
		fr := make([]string, len(step.Frames))
		for j, p := range step.Frames {
			fr[j] = string(p)
		}
		states[i] = State{
			Frames:         fr,
			PageFault:      step.Fault,
			ReferenceIndex: step.ReferenceIndex,
		}
	}

	return &Record{
		Timestamp:       at.UnixMilli(),
		Algorithm:       res.Policy.String(),
		ReferenceString: referenceString,
		FrameCount:      res.Capacity,
		PageFaults:      res.PageFaults,
		HitRatio:        res.HitRatio,
		States:          states,
	}
}

// Serialize encodes the record as indented JSON
func (r *Record) Serialize() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("[record] [Serialize] marshal: %w", err)
	}
	return data, nil
}

// Deserialize decodes and validates a record
func Deserialize(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("[record] [Deserialize] %w: %v", util.ErrInvalidRecord, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Record) Validate() error {
	switch {
	case len(r.States) == 0:
		return fmt.Errorf("%w: no states", util.ErrInvalidRecord)
	case r.FrameCount <= 0:
		return fmt.Errorf("%w: frameCount %d", util.ErrInvalidRecord, r.FrameCount)
	case r.HitRatio < 0 || r.HitRatio > 1:
		return fmt.Errorf("%w: hitRatio %v out of range", util.ErrInvalidRecord, r.HitRatio)
	case r.PageFaults < 0 || r.PageFaults > len(r.States):
		return fmt.Errorf("%w: pageFaults %d for %d states", util.ErrInvalidRecord, r.PageFaults, len(r.States))
	}
	if _, err := replacement.ParsePolicy(r.Algorithm); err != nil {
		return fmt.Errorf("%w: algorithm %q", util.ErrInvalidRecord, r.Algorithm)
	}
	faults := 0
	for i, s := range r.States {
		if s.ReferenceIndex != i {
			return fmt.Errorf("%w: state %d has referenceIndex %d", util.ErrInvalidRecord, i, s.ReferenceIndex)
		}
		if len(s.Frames) > r.FrameCount {
			return fmt.Errorf("%w: state %d holds %d frames, capacity %d", util.ErrInvalidRecord, i, len(s.Frames), r.FrameCount)
		}
		if s.PageFault {
			faults++
		}
	}
	if faults != r.PageFaults {
		return fmt.Errorf("%w: pageFaults %d but %d states fault", util.ErrInvalidRecord, r.PageFaults, faults)
	}

	total := len(r.States)
	expected := float64(total-faults) / float64(total)
	if math.Abs(r.HitRatio-expected) > hitRatioTolerance {
		return fmt.Errorf("%w: hitRatio %v, states give %v", util.ErrInvalidRecord, r.HitRatio, expected)
	}
	return nil
}

func (r *Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

// Filename is the export file name, ext is appended after .json
func (r *Record) Filename(ext string) string {
	return fmt.Sprintf("simulation-%d.json%s", r.Timestamp, ext)
}

// Summary renders the plain text shared with other apps.
func (r *Record) Summary() string {
	var sb strings.Builder
	sb.WriteString("Page Replacement Simulation Results\n")
	sb.WriteString("--------------------------------\n")
	fmt.Fprintf(&sb, "Algorithm: %s\n", r.Algorithm)
	fmt.Fprintf(&sb, "Reference String: %s\n", r.ReferenceString)
	fmt.Fprintf(&sb, "Frame Count: %d\n", r.FrameCount)
	fmt.Fprintf(&sb, "Page Faults: %d\n", r.PageFaults)
	fmt.Fprintf(&sb, "Hit Ratio: %.2f%%\n", r.HitRatio*100)
	fmt.Fprintf(&sb, "Fault Ratio: %.2f%%\n", (1-r.HitRatio)*100)
	return sb.String()
}
