package domain

// legalTransitions describes the disposal lifecycle:
// recorded → collected → processed → completed. No skips, no cycles.
var legalTransitions = map[DisposalStatus]DisposalStatus{
	StatusRecorded:  StatusCollected,
	StatusCollected: StatusProcessed,
	StatusProcessed: StatusCompleted,
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s DisposalStatus) CanTransitionTo(next DisposalStatus) bool {
	return legalTransitions[s] == next
}
