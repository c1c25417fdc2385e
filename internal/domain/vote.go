package domain

import "fmt"

// VoteAction is the direction of a vote. Values match the "type" query
// parameter of the vote endpoint and the votes.action column.
type VoteAction string

const (
	VoteUp   VoteAction = "U"
	VoteDown VoteAction = "D"
)

func (a VoteAction) String() string { return string(a) }

func (a VoteAction) IsValid() bool {
	switch a {
	case VoteUp, VoteDown:
		return true
	}
	return false
}

// ParseVoteAction converts a raw request value into a VoteAction.
func ParseVoteAction(s string) (VoteAction, error) {
	a := VoteAction(s)
	if !a.IsValid() {
		return "", fmt.Errorf("vote action %q: %w", s, ErrInvalidArgument)
	}
	return a, nil
}

// VoteState is the ledger state of a single (link, user) pair.
type VoteState string

const (
	VoteStateNone VoteState = "NONE"
	VoteStateUp   VoteState = "UP"
	VoteStateDown VoteState = "DOWN"
)

func (s VoteState) String() string { return string(s) }

// StateOf returns the state a stored action represents.
func StateOf(a VoteAction) VoteState {
	switch a {
	case VoteUp:
		return VoteStateUp
	case VoteDown:
		return VoteStateDown
	}
	return VoteStateNone
}

// Toggle returns the state reached when requested is applied to s:
// repeating the current action clears it, anything else switches to it.
func (s VoteState) Toggle(requested VoteAction) VoteState {
	target := StateOf(requested)
	if s == target {
		return VoteStateNone
	}
	return target
}

// VoteSummary is the vote tally of a link as seen by one user.
type VoteSummary struct {
	State     VoteState
	Upvotes   int
	Downvotes int
}

// Score is upvotes minus downvotes.
func (v VoteSummary) Score() int {
	return v.Upvotes - v.Downvotes
}
