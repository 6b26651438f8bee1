package transaction

// Status is the processing outcome of a payment attempt. Wire values keep
// the marketplace's historical French vocabulary, accents included.
type Status string

const (
	StatusPending   Status = "en_attente"
	StatusSucceeded Status = "réussi"
	StatusFailed    Status = "échoué"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSucceeded, StatusFailed:
		return true
	default:
		return false
	}
}

// Channel is the payment channel chosen at booking time.
type Channel string

const (
	ChannelMobileMoney  Channel = "mobile_money"
	ChannelBankTransfer Channel = "virement"
	ChannelCash         Channel = "espèces"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelMobileMoney, ChannelBankTransfer, ChannelCash:
		return true
	default:
		return false
	}
}
