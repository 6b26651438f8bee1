package listing

type RentalType string

const (
	RentalShortTerm RentalType = "short_term"
	RentalMonthly   RentalType = "monthly"
)

func (t RentalType) String() string {
	return string(t)
}

func (t RentalType) IsValid() bool {
	switch t {
	case RentalShortTerm, RentalMonthly:
		return true
	default:
		return false
	}
}
