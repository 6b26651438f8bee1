package reservation

// Status is the primary lifecycle state. It only ever moves forward:
// pending -> confirmed -> cancelled, with cancelled terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// PartyConfirmation tracks the two independent side-flags: the guest's
// arrival validation (status_client) and the host's payment acknowledgment
// (status_hote). Empty means not yet given; once confirmed it never reverts.
type PartyConfirmation string

const (
	ConfirmationNone  PartyConfirmation = ""
	ConfirmationGiven PartyConfirmation = "confirmed"
)

func (c PartyConfirmation) String() string {
	return string(c)
}

func (c PartyConfirmation) IsGiven() bool {
	return c == ConfirmationGiven
}
