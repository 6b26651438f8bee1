package response

import (
	"time"

	"loca-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           uuid.UUID             `json:"id"`
	Code         string                `json:"code_reservation"`
	ListingID    uuid.UUID             `json:"listing_id"`
	ListingTitle string                `json:"listing_title"`
	HostID       uuid.UUID             `json:"host_id"`
	UserID       uuid.UUID             `json:"user_id"`
	GuestEmail   string                `json:"guest_email"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	TotalPrice   int64                 `json:"total_price"`
	Status       string                `json:"status"`
	StatusClient *string               `json:"status_client"`
	StatusHote   *string               `json:"status_hote"`
	Etat         string                `json:"etat"`
	Motif        *string               `json:"motif,omitempty"`
	CheckInHours *string               `json:"check_in_hours,omitempty"`
	DateVisite   *string               `json:"date_visite,omitempty"`
	HeureVisite  *string               `json:"heure_visite,omitempty"`
	ArchivedAt   *time.Time            `json:"archived_at,omitempty"`
	Transactions []TransactionResponse `json:"transactions"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type TransactionResponse struct {
	ID                uuid.UUID `json:"id"`
	ReservationID     uuid.UUID `json:"reservation_id"`
	Type              string    `json:"type_transaction"`
	Reference         string    `json:"reference_transaction"`
	Montant           int64     `json:"montant"`
	Devise            string    `json:"devise"`
	Statut            string    `json:"statut"`
	Etat              string    `json:"etat"`
	NomMobileMoney    *string   `json:"nom_mobile_money,omitempty"`
	NumeroMobileMoney *string   `json:"numero_mobile_money,omitempty"`
	DateTransaction   time.Time `json:"date_transaction"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code_reservation"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalPrice   int64     `json:"total_price"`
	Status       string    `json:"status"`
	Etat         string    `json:"etat"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// field names line up with the read model
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	var resp ReservationListResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
