package flow

// Step is the outcome of a navigation request. Incomplete sections and the
// emergency branch are expected outcomes, not errors.
type Step int

const (
	StepNoop       Step = iota // No transition applies in the current state
	StepAdvanced               // Moved to the next section
	StepIncomplete             // Current section has unanswered questions
	StepEmergency              // Crisis answers raised the emergency overlay
	StepAtEnd                  // Already at the completion section
)

func (s Step) String() string {
	switch s {
	case StepNoop:
		return "noop"
	case StepAdvanced:
		return "advanced"
	case StepIncomplete:
		return "incomplete"
	case StepEmergency:
		return "emergency"
	case StepAtEnd:
		return "at-end"
	default:
		return "unknown"
	}
}
