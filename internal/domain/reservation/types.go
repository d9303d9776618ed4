package reservation

// Status is the closed set of lifecycle states.
type Status string

const (
	StatusPending   Status = "MENUNGGU"
	StatusApproved  Status = "DISETUJUI"
	StatusRejected  Status = "DITOLAK"
	StatusCancelled Status = "DIBATALKAN"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal is true for every state except MENUNGGU. An approved
// reservation may still be cancelled before it starts.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Action string

const (
	ActionApprove    Action = "approve"
	ActionReject     Action = "reject"
	ActionAutoReject Action = "auto_reject"
	ActionCancel     Action = "cancel"
)

type transition struct {
	from    []Status
	to      Status
	refusal error
}

// Every permitted status change lives here. Nothing leaves DITOLAK or DIBATALKAN.
var transitions = map[Action]transition{
	ActionApprove:    {from: []Status{StatusPending}, to: StatusApproved, refusal: ErrNotPending},
	ActionReject:     {from: []Status{StatusPending}, to: StatusRejected, refusal: ErrNotPending},
	ActionAutoReject: {from: []Status{StatusPending}, to: StatusRejected, refusal: ErrNotPending},
	ActionCancel:     {from: []Status{StatusPending, StatusApproved}, to: StatusCancelled, refusal: ErrNotCancellable},
}

// Next returns the status reached by applying action to from.
func Next(action Action, from Status) (Status, error) {
	t, ok := transitions[action]
	if !ok {
		return "", ErrInvalidStatus
	}
	for _, s := range t.from {
		if s == from {
			return t.to, nil
		}
	}
	return "", t.refusal
}

// Refusal is the error reported when action is attempted from a disallowed state.
func Refusal(action Action) error {
	return transitions[action].refusal
}
