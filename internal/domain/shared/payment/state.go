// Package payment holds the payment-completeness state shared by
// reservations and transactions. Wire values stay in the marketplace's
// historical French vocabulary.
package payment

type State string

const (
	StateUnpaid  State = "non_payer"
	StatePaid    State = "payer"
	StatePartial State = "partiel"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateUnpaid, StatePaid, StatePartial:
		return true
	default:
		return false
	}
}
