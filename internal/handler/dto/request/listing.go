package request

import (
	"loca-api/internal/domain/listing"
	"loca-api/internal/usecase/commands"
)

type CreateListingRequest struct {
	Title        string `json:"title" binding:"required"`
	RentalType   string `json:"rental_type" binding:"required"`
	NightlyPrice int64  `json:"nightly_price"`
	MonthlyPrice int64  `json:"monthly_price"`
}

func (r CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Title:        r.Title,
		RentalType:   listing.RentalType(r.RentalType),
		NightlyPrice: r.NightlyPrice,
		MonthlyPrice: r.MonthlyPrice,
	}
}

type UpdateListingRequest struct {
	Title        string `json:"title" binding:"required"`
	RentalType   string `json:"rental_type" binding:"required"`
	NightlyPrice int64  `json:"nightly_price"`
	MonthlyPrice int64  `json:"monthly_price"`
}

func (r UpdateListingRequest) ToInput() commands.UpdateListingInput {
	return commands.UpdateListingInput{
		Title:        r.Title,
		RentalType:   listing.RentalType(r.RentalType),
		NightlyPrice: r.NightlyPrice,
		MonthlyPrice: r.MonthlyPrice,
	}
}
