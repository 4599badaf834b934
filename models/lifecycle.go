package models

// MarketAction is an operation that may move a market between statuses.
type MarketAction string

const (
	ActionApprove       MarketAction = "approve"
	ActionActivate      MarketAction = "activate"
	ActionClose         MarketAction = "close"
	ActionResolve       MarketAction = "resolve"
	ActionDissolve      MarketAction = "dissolve"
	ActionFileDispute   MarketAction = "file_dispute"
	ActionDecideDispute MarketAction = "decide_dispute"
)

// transition describes the legal source statuses for an action and the
// status the market lands in afterwards.
type transition struct {
	from []MarketStatus
	to   MarketStatus
}

// lifecycle is the single source of truth for legal market transitions.
// Every mutating entry point consults it; nothing else is allowed to
// change Market.Status.
var lifecycle = map[MarketAction]transition{
	ActionApprove:       {from: []MarketStatus{MarketStatusProposed}, to: MarketStatusApproved},
	ActionActivate:      {from: []MarketStatus{MarketStatusApproved}, to: MarketStatusLive},
	ActionClose:         {from: []MarketStatus{MarketStatusLive}, to: MarketStatusClosed},
	ActionResolve:       {from: []MarketStatus{MarketStatusClosed}, to: MarketStatusResolved},
	ActionDissolve:      {from: []MarketStatus{MarketStatusProposed, MarketStatusApproved}, to: MarketStatusDissolved},
	ActionFileDispute:   {from: []MarketStatus{MarketStatusResolved}, to: MarketStatusDisputed},
	ActionDecideDispute: {from: []MarketStatus{MarketStatusDisputed}, to: MarketStatusFinal},
}

// NextStatus returns the status a market enters when action is applied to
// current. It returns ErrInvalidStateTransition when the action is unknown
// or current is not a legal source for it.
func NextStatus(current MarketStatus, action MarketAction) (MarketStatus, error) {
	t, ok := lifecycle[action]
	if !ok {
		return "", ErrInvalidStateTransition
	}
	for _, s := range t.from {
		if s == current {
			return t.to, nil
		}
	}
	return "", ErrInvalidStateTransition
}

// CanTransition reports whether action is legal from the current status.
func CanTransition(current MarketStatus, action MarketAction) bool {
	_, err := NextStatus(current, action)
	return err == nil
}

// RequiredStatuses returns the statuses an action may be applied from.
// Used by handlers to produce precise error messages.
func RequiredStatuses(action MarketAction) []MarketStatus {
	t, ok := lifecycle[action]
	if !ok {
		return nil
	}
	out := make([]MarketStatus, len(t.from))
	copy(out, t.from)
	return out
}

// IsTerminal reports whether no action can ever move a market out of status.
func IsTerminal(status MarketStatus) bool {
	for _, t := range lifecycle {
		for _, s := range t.from {
			if s == status {
				return false
			}
		}
	}
	return true
}
