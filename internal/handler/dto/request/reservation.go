package request

import (
	"strings"
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ListingID         uuid.UUID `json:"listingId" binding:"required"`
	StartDate         string    `json:"startDate" binding:"required"`
	EndDate           string    `json:"endDate" binding:"required"`
	TotalPrice        int64     `json:"totalPrice" binding:"required"`
	TypeTransaction   string    `json:"type_transaction" binding:"required"`
	NomMobileMoney    *string   `json:"nom_mobile_money,omitempty"`
	NumeroMobileMoney *string   `json:"numero_mobile_money,omitempty"`
	CheckInHours      *string   `json:"check_in_hours,omitempty"`
	Message           *string   `json:"message,omitempty"`
}

// GetMessage returns the optional host-greeting message, trimmed, or nil.
func (r CreateReservationRequest) GetMessage() *string {
	if r.Message == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Message)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ToInput parses the calendar-day strings and assembles the command input.
// The single booking-time transaction covers the full price in the
// configured currency.
func (r CreateReservationRequest) ToInput(currency string) (commands.CreateReservationInput, error) {
	start, err := time.Parse(daterange.DayFormat, r.StartDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	end, err := time.Parse(daterange.DayFormat, r.EndDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		ListingID:         r.ListingID,
		StartDate:         start,
		EndDate:           end,
		TotalPrice:        r.TotalPrice,
		PaymentChannel:    transaction.Channel(r.TypeTransaction),
		Montant:           r.TotalPrice,
		Devise:            currency,
		NomMobileMoney:    r.NomMobileMoney,
		NumeroMobileMoney: r.NumeroMobileMoney,
		CheckInHours:      r.CheckInHours,
	}, nil
}

type CancelReservationRequest struct {
	Motif string `json:"motif"`
}
