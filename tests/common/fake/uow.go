// Package fake provides an in-memory UnitOfWork for command unit tests.
// Writes are applied immediately; Within neither isolates nor rolls back,
// which is fine for single-goroutine tests asserting end state.
package fake

import (
	"context"
	"strings"
	"time"

	"loca-api/internal/domain/listing"
	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRow struct {
	Snapshot   shared.ReservationSnapshot
	Code       string
	TotalPrice int64
}

type TransactionRow struct {
	Snapshot  shared.TransactionSnapshot
	Reference string
	Montant   int64
}

type AvailabilityRow struct {
	ListingID   uuid.UUID
	Date        time.Time
	IsAvailable bool
}

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Body           string
}

type UnitOfWork struct {
	Reservs       map[uuid.UUID]*ReservationRow
	Txns          map[uuid.UUID]*TransactionRow
	Lists         map[uuid.UUID]*shared.ListingSnapshot
	Overrides     []AvailabilityRow
	Convs         map[uuid.UUID]*shared.ConversationSnapshot
	Messages      []Message
	WithinCalls   int
	FailWithinErr error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Reservs: make(map[uuid.UUID]*ReservationRow),
		Txns:    make(map[uuid.UUID]*TransactionRow),
		Lists:   make(map[uuid.UUID]*shared.ListingSnapshot),
		Convs:   make(map[uuid.UUID]*shared.ConversationSnapshot),
	}
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.WithinCalls++
	if u.FailWithinErr != nil {
		return u.FailWithinErr
	}
	return fn(ctx, &fakeTx{u})
}

func (u *UnitOfWork) Direct() shared.Tx {
	return &fakeTx{u}
}

// Seed helpers

func (u *UnitOfWork) SeedListing(hostID uuid.UUID, nightlyPrice int64) uuid.UUID {
	id := uuid.New()
	u.Lists[id] = &shared.ListingSnapshot{
		ID:           id,
		HostID:       hostID,
		Title:        "Appartement T2 Plateau",
		RentalType:   listing.RentalShortTerm,
		NightlyPrice: nightlyPrice,
	}
	return id
}

func (u *UnitOfWork) SeedReservation(snap shared.ReservationSnapshot) uuid.UUID {
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	u.Reservs[snap.ID] = &ReservationRow{Snapshot: snap}
	return snap.ID
}

func (u *UnitOfWork) SeedTransaction(snap shared.TransactionSnapshot) uuid.UUID {
	if snap.ID == uuid.Nil {
		snap.ID = uuid.New()
	}
	u.Txns[snap.ID] = &TransactionRow{Snapshot: snap}
	return snap.ID
}

type fakeTx struct{ u *UnitOfWork }

func (t *fakeTx) Reservations() shared.ReservationRepository   { return &reservationRepo{t.u} }
func (t *fakeTx) Transactions() shared.TransactionRepository   { return &transactionRepo{t.u} }
func (t *fakeTx) Availability() shared.AvailabilityRepository  { return &availabilityRepo{t.u} }
func (t *fakeTx) Listings() shared.ListingRepository           { return &listingRepo{t.u} }
func (t *fakeTx) Conversations() shared.ConversationRepository { return &conversationRepo{t.u} }

type reservationRepo struct{ u *UnitOfWork }

func (r *reservationRepo) Create(_ context.Context, rsv *reservation.Reservation) error {
	r.u.Reservs[rsv.ID()] = &ReservationRow{
		Snapshot: shared.ReservationSnapshot{
			ID:           rsv.ID(),
			UserID:       rsv.UserID(),
			ListingID:    rsv.ListingID(),
			HostID:       r.hostOf(rsv.ListingID()),
			StartDate:    rsv.Stay().Start(),
			EndDate:      rsv.Stay().End(),
			Status:       rsv.Status(),
			StatusClient: rsv.StatusClient(),
			StatusHote:   rsv.StatusHote(),
			Etat:         rsv.Etat(),
			Motif:        rsv.Motif(),
		},
		Code:       rsv.Code(),
		TotalPrice: rsv.TotalPrice(),
	}
	return nil
}

func (r *reservationRepo) hostOf(listingID uuid.UUID) uuid.UUID {
	if l, ok := r.u.Lists[listingID]; ok {
		return l.HostID
	}
	return uuid.Nil
}

func (r *reservationRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	row, ok := r.u.Reservs[id]
	if !ok {
		return nil, errs.ErrReservationNotFound
	}
	snap := row.Snapshot
	return &snap, nil
}

func (r *reservationRepo) ExistsOverlapping(_ context.Context, listingID uuid.UUID, start, end time.Time) (bool, error) {
	for _, row := range r.u.Reservs {
		s := row.Snapshot
		if s.ListingID != listingID || s.Status == reservation.StatusCancelled {
			continue
		}
		if !s.EndDate.Before(start) && !s.StartDate.After(end) {
			return true, nil
		}
	}
	return false, nil
}

func (r *reservationRepo) Cancel(_ context.Context, id uuid.UUID, motif string) (int64, error) {
	row, ok := r.u.Reservs[id]
	if !ok {
		return 0, nil
	}
	row.Snapshot.Status = reservation.StatusCancelled
	if motif != "" {
		row.Snapshot.Motif = motif
	}
	return 1, nil
}

func (r *reservationRepo) ConfirmByHost(_ context.Context, id, hostID uuid.UUID) (int64, error) {
	row, ok := r.u.Reservs[id]
	if !ok || row.Snapshot.HostID != hostID || row.Snapshot.Status == reservation.StatusCancelled {
		return 0, nil
	}
	row.Snapshot.Status = reservation.StatusConfirmed
	return 1, nil
}

func (r *reservationRepo) ConfirmPayment(_ context.Context, id uuid.UUID) (int64, error) {
	row, ok := r.u.Reservs[id]
	if !ok || row.Snapshot.StatusHote.IsGiven() || row.Snapshot.Status == reservation.StatusCancelled {
		return 0, nil
	}
	row.Snapshot.StatusHote = reservation.ConfirmationGiven
	return 1, nil
}

func (r *reservationRepo) ValidateArrival(_ context.Context, id uuid.UUID) (int64, error) {
	row, ok := r.u.Reservs[id]
	if !ok || row.Snapshot.StatusClient.IsGiven() || row.Snapshot.Status != reservation.StatusConfirmed {
		return 0, nil
	}
	row.Snapshot.StatusClient = reservation.ConfirmationGiven
	return 1, nil
}

func (r *reservationRepo) Archive(_ context.Context, id uuid.UUID, motif string, archivedAt time.Time) (int64, error) {
	row, ok := r.u.Reservs[id]
	if !ok || row.Snapshot.ArchivedAt != nil || row.Snapshot.Status != reservation.StatusCancelled {
		return 0, nil
	}
	at := archivedAt
	row.Snapshot.ArchivedAt = &at
	row.Snapshot.Motif = motif
	return 1, nil
}

func (r *reservationRepo) SetEtat(_ context.Context, id uuid.UUID, etat payment.State) error {
	row, ok := r.u.Reservs[id]
	if !ok {
		return errs.ErrReservationNotFound
	}
	row.Snapshot.Etat = etat
	return nil
}

func (r *reservationRepo) DeleteOwned(_ context.Context, id, callerID uuid.UUID) (int64, error) {
	row, ok := r.u.Reservs[id]
	if !ok {
		return 0, nil
	}
	if row.Snapshot.UserID != callerID && row.Snapshot.HostID != callerID {
		return 0, nil
	}
	delete(r.u.Reservs, id)
	return 1, nil
}

type transactionRepo struct{ u *UnitOfWork }

func (r *transactionRepo) Create(_ context.Context, txn *transaction.Transaction) error {
	r.u.Txns[txn.ID()] = &TransactionRow{
		Snapshot: shared.TransactionSnapshot{
			ID:            txn.ID(),
			ReservationID: txn.ReservationID(),
			Statut:        txn.Statut(),
			Etat:          txn.Etat(),
		},
		Reference: txn.Reference(),
		Montant:   txn.Montant(),
	}
	return nil
}

func (r *transactionRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.TransactionSnapshot, error) {
	row, ok := r.u.Txns[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	snap := row.Snapshot
	return &snap, nil
}

func (r *transactionRepo) FailAllForReservation(_ context.Context, reservationID uuid.UUID) (int64, error) {
	var count int64
	for _, row := range r.u.Txns {
		if row.Snapshot.ReservationID == reservationID {
			row.Snapshot.Statut = transaction.StatusFailed
			count++
		}
	}
	return count, nil
}

func (r *transactionRepo) HasSuccessful(_ context.Context, reservationID uuid.UUID) (bool, error) {
	for _, row := range r.u.Txns {
		if row.Snapshot.ReservationID == reservationID && row.Snapshot.Statut == transaction.StatusSucceeded {
			return true, nil
		}
	}
	return false, nil
}

func (r *transactionRepo) HasSettled(_ context.Context, reservationID uuid.UUID) (bool, error) {
	for _, row := range r.u.Txns {
		s := row.Snapshot
		if s.ReservationID == reservationID && s.Statut == transaction.StatusSucceeded && s.Etat == payment.StatePaid {
			return true, nil
		}
	}
	return false, nil
}

func (r *transactionRepo) UpdateStatus(_ context.Context, id uuid.UUID, statut *transaction.Status, etat *payment.State) (int64, error) {
	row, ok := r.u.Txns[id]
	if !ok {
		return 0, nil
	}
	if statut != nil {
		row.Snapshot.Statut = *statut
	}
	if etat != nil {
		row.Snapshot.Etat = *etat
	}
	return 1, nil
}

type availabilityRepo struct{ u *UnitOfWork }

func (r *availabilityRepo) Upsert(_ context.Context, listingID uuid.UUID, date time.Time, isAvailable bool) error {
	for i := range r.u.Overrides {
		o := &r.u.Overrides[i]
		if o.ListingID == listingID && o.Date.Equal(date) {
			o.IsAvailable = isAvailable
			return nil
		}
	}
	r.u.Overrides = append(r.u.Overrides, AvailabilityRow{ListingID: listingID, Date: date, IsAvailable: isAvailable})
	return nil
}

type listingRepo struct{ u *UnitOfWork }

func (r *listingRepo) Create(_ context.Context, l *listing.Listing) error {
	r.u.Lists[l.ID()] = &shared.ListingSnapshot{
		ID:           l.ID(),
		HostID:       l.HostID(),
		Title:        l.Title(),
		RentalType:   l.RentalType(),
		NightlyPrice: l.NightlyPrice(),
		MonthlyPrice: l.MonthlyPrice(),
	}
	return nil
}

func (r *listingRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	snap, ok := r.u.Lists[id]
	if !ok {
		return nil, errs.ErrListingNotFound
	}
	out := *snap
	return &out, nil
}

func (r *listingRepo) UpdateOwned(_ context.Context, id, hostID uuid.UUID, title string, rentalType listing.RentalType, nightlyPrice, monthlyPrice int64) (int64, error) {
	snap, ok := r.u.Lists[id]
	if !ok || snap.HostID != hostID {
		return 0, nil
	}
	snap.Title = title
	snap.RentalType = rentalType
	snap.NightlyPrice = nightlyPrice
	snap.MonthlyPrice = monthlyPrice
	return 1, nil
}

func (r *listingRepo) DeleteOwned(_ context.Context, id, hostID uuid.UUID) (int64, error) {
	snap, ok := r.u.Lists[id]
	if !ok || snap.HostID != hostID {
		return 0, nil
	}
	delete(r.u.Lists, id)
	return 1, nil
}

type conversationRepo struct{ u *UnitOfWork }

func (r *conversationRepo) GetOrCreate(_ context.Context, userA, userB uuid.UUID, listingID *uuid.UUID) (uuid.UUID, error) {
	for id, snap := range r.u.Convs {
		if snap.HasParticipant(userA) && snap.HasParticipant(userB) {
			return id, nil
		}
	}
	id := uuid.New()
	r.u.Convs[id] = &shared.ConversationSnapshot{ID: id, UserAID: userA, UserBID: userB, ListingID: listingID}
	return id, nil
}

func (r *conversationRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.ConversationSnapshot, error) {
	snap, ok := r.u.Convs[id]
	if !ok {
		return nil, errs.ErrConversationNotFound
	}
	out := *snap
	return &out, nil
}

func (r *conversationRepo) AppendMessage(_ context.Context, conversationID, senderID uuid.UUID, body string) (uuid.UUID, error) {
	if _, ok := r.u.Convs[conversationID]; !ok {
		return uuid.Nil, errs.ErrConversationNotFound
	}
	id := uuid.New()
	r.u.Messages = append(r.u.Messages, Message{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           strings.TrimSpace(body),
	})
	return id, nil
}
