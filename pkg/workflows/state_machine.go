package workflows

// StateMachine enforces status transitions for one entity type.
type StateMachine struct {
	allowedTransitions map[string][]string
}

// NewStateMachine creates a state machine from an adjacency list of allowed
// transitions. Every status the entity can hold must appear as a key, even
// terminal statuses (with an empty slice).
func NewStateMachine(transitions map[string][]string) *StateMachine {
	return &StateMachine{allowedTransitions: transitions}
}

// CanTransition checks if a status transition is allowed.
func (sm *StateMachine) CanTransition(from, to string) bool {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return false
	}
	for _, allowedTo := range allowed {
		if allowedTo == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the allowed next statuses for a given status.
func (sm *StateMachine) AllowedTransitions(from string) []string {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return []string{}
	}
	return allowed
}

// IsTerminal reports whether a status has no outgoing transitions.
func (sm *StateMachine) IsTerminal(status string) bool {
	allowed, exists := sm.allowedTransitions[status]
	return exists && len(allowed) == 0
}

// IsKnown reports whether the status is part of the entity's status set.
func (sm *StateMachine) IsKnown(status string) bool {
	_, exists := sm.allowedTransitions[status]
	return exists
}

// Statuses returns every status in the machine.
func (sm *StateMachine) Statuses() []string {
	statuses := make([]string, 0, len(sm.allowedTransitions))
	for status := range sm.allowedTransitions {
		statuses = append(statuses, status)
	}
	return statuses
}
