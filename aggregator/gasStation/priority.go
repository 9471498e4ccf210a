package gas

import "fmt"

// Priority is a gas station speed tier, selecting one of the recommended gas prices
type Priority string

const (
	// PriorityFast is expected to be mined in less than 2 minutes
	PriorityFast Priority = "fast"
	// PriorityFastest is expected to be mined in less than 30 seconds
	PriorityFastest Priority = "fastest"
	// PrioritySafeLow is expected to be mined in less than 30 minutes
	PrioritySafeLow Priority = "safeLow"
	// PriorityAverage is expected to be mined in less than 5 minutes
	PriorityAverage Priority = "average"
)

// DefaultPriority is the priority used when the caller does not pick one
const DefaultPriority = PriorityFast

// Priorities holds all the available ETH gas station priorities
var Priorities = []Priority{PriorityFast, PriorityFastest, PrioritySafeLow, PriorityAverage}

// IsValid returns true if the priority is one of the gas station priorities
func (p Priority) IsValid() bool {
	switch p {
	case PriorityFast, PriorityFastest, PrioritySafeLow, PriorityAverage:
		return true
	}

	return false
}

// String returns the priority name, as used by the gas station API
func (p Priority) String() string {
	return string(p)
}

// ParsePriority returns the priority named by the provided string
func ParsePriority(name string) (Priority, error) {
	priority := Priority(name)
	if !priority.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, name)
	}

	return priority, nil
}
