package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("listing title is empty")
	ErrInvalidRentalType = errors.New("invalid rental type")
	ErrNegativePrice     = errors.New("listing price cannot be negative")
)

type Listing struct {
	id           uuid.UUID
	hostID       uuid.UUID
	title        string
	rentalType   RentalType
	nightlyPrice int64
	monthlyPrice int64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewListing(hostID uuid.UUID, title string, rentalType RentalType, nightlyPrice, monthlyPrice int64) (*Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !rentalType.IsValid() {
		return nil, ErrInvalidRentalType
	}
	if nightlyPrice < 0 || monthlyPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Listing{
		id:           uuid.New(),
		hostID:       hostID,
		title:        title,
		rentalType:   rentalType,
		nightlyPrice: nightlyPrice,
		monthlyPrice: monthlyPrice,
	}, nil
}

func ReconstructListing(
	id, hostID uuid.UUID,
	title string,
	rentalType RentalType,
	nightlyPrice, monthlyPrice int64,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:           id,
		hostID:       hostID,
		title:        title,
		rentalType:   rentalType,
		nightlyPrice: nightlyPrice,
		monthlyPrice: monthlyPrice,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.hostID == userID
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) HostID() uuid.UUID      { return l.hostID }
func (l *Listing) Title() string          { return l.title }
func (l *Listing) RentalType() RentalType { return l.rentalType }
func (l *Listing) NightlyPrice() int64    { return l.nightlyPrice }
func (l *Listing) MonthlyPrice() int64    { return l.monthlyPrice }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time   { return l.updatedAt }
