package request

import (
	"time"

	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpdateAvailabilityRequest struct {
	ListingID   uuid.UUID `json:"listingId" binding:"required"`
	Dates       []string  `json:"dates" binding:"required,min=1"`
	IsAvailable *bool     `json:"isAvailable" binding:"required"`
}

func (r UpdateAvailabilityRequest) ToChanges() ([]commands.AvailabilityChange, error) {
	changes := make([]commands.AvailabilityChange, 0, len(r.Dates))
	for _, s := range r.Dates {
		d, err := time.Parse(daterange.DayFormat, s)
		if err != nil {
			return nil, err
		}
		changes = append(changes, commands.AvailabilityChange{Date: d, IsAvailable: *r.IsAvailable})
	}
	return changes, nil
}
