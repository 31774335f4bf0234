package replacement

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// Policy names a replacement strategy.
type Policy string

const (
	FIFO    Policy = "FIFO"
	LRU     Policy = "LRU"
	OPTIMAL Policy = "OPTIMAL"
)

// Factory returns a fresh Replacer for one run.
type Factory func() Replacer

var (
	registryMu sync.RWMutex
	registry   = map[Policy]Factory{
		FIFO:    func() Replacer { return &FIFOReplacer{} },
		LRU:     func() Replacer { return &LRUReplacer{} },
		OPTIMAL: func() Replacer { return &OptimalReplacer{} },
	}
)

// Register adds or replaces the strategy behind a policy name.
func Register(policy Policy, factory Factory) error {
	name := policy.canonical()
	if name == "" || factory == nil {
		return fmt.Errorf("[policy] [Register] empty name or nil factory for %q", policy)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
	return nil
}

// Policies lists registered policies in name order.
func Policies() []Policy {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// ParsePolicy accepts any letter case; OPT is an alias of OPTIMAL.
func ParsePolicy(raw string) (Policy, error) {
	name := Policy(raw).canonical()
	if _, err := newReplacer(name); err != nil {
		return "", err
	}
	return name, nil
}

func (p Policy) String() string {
	return string(p)
}

// canonical is the registry key of p: trimmed, upper case, OPT folded into OPTIMAL.
func (p Policy) canonical() Policy {
	name := Policy(strings.ToUpper(strings.TrimSpace(string(p))))
	if name == "OPT" {
		return OPTIMAL
	}
	return name
}

func newReplacer(policy Policy) (Replacer, error) {
	registryMu.RLock()
	factory, ok := registry[policy.canonical()]
	registryMu.RUnlock()
	if !ok {
		return nil, util.NewValidationError(util.ErrTypeUnknownPolicy, "algorithm", string(policy))
	}
	return factory(), nil
}
