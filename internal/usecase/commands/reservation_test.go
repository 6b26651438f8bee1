//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/daterange"
	"loca-api/internal/domain/shared/payment"
	"loca-api/internal/domain/transaction"
	"loca-api/internal/domain/user"
	"loca-api/internal/pkg/clock"
	"loca-api/internal/pkg/errs"
	"loca-api/internal/usecase/commands"
	"loca-api/internal/usecase/shared"
	"loca-api/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(daterange.DayFormat, s)
	require.NoError(t, err)
	return d
}

func guest(id uuid.UUID) shared.Actor {
	return shared.Actor{ID: id, Role: user.RoleUser}
}

func admin() shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func createInput(t *testing.T, listingID uuid.UUID) commands.CreateReservationInput {
	t.Helper()
	return commands.CreateReservationInput{
		ListingID:      listingID,
		StartDate:      day(t, "2024-03-10"),
		EndDate:        day(t, "2024-03-12"),
		TotalPrice:     45000,
		PaymentChannel: transaction.ChannelMobileMoney,
		Montant:        45000,
		Devise:         "XOF",
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("creates reservation and pending transaction together", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		listingID := uow.SeedListing(uuid.New(), 15000)
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		guestID := uuid.New()
		result, err := cmd.Create(context.Background(), guest(guestID), createInput(t, listingID))
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^RSV-[A-Z0-9]{6}$`), result.ReservationCode)
		assert.Regexp(t, regexp.MustCompile(`^TX-[A-Z0-9]{6}$`), result.TransactionRef)

		rsv := uow.Reservs[result.ReservationID]
		require.NotNil(t, rsv)
		assert.Equal(t, reservation.StatusPending, rsv.Snapshot.Status)
		assert.Equal(t, payment.StateUnpaid, rsv.Snapshot.Etat)
		assert.Equal(t, guestID, rsv.Snapshot.UserID)

		txn := uow.Txns[result.TransactionID]
		require.NotNil(t, txn)
		assert.Equal(t, transaction.StatusPending, txn.Snapshot.Statut)
		assert.Equal(t, result.ReservationID, txn.Snapshot.ReservationID)
	})

	t.Run("rejects overlap with a non-cancelled reservation", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		listingID := uow.SeedListing(uuid.New(), 15000)
		uow.SeedReservation(shared.ReservationSnapshot{
			ListingID: listingID,
			StartDate: day(t, "2024-03-11"),
			EndDate:   day(t, "2024-03-14"),
			Status:    reservation.StatusConfirmed,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		_, err := cmd.Create(context.Background(), guest(uuid.New()), createInput(t, listingID))
		assert.ErrorIs(t, err, errs.ErrDatesUnavailable)
	})

	t.Run("cancelled reservations do not block new bookings", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		listingID := uow.SeedListing(uuid.New(), 15000)
		uow.SeedReservation(shared.ReservationSnapshot{
			ListingID: listingID,
			StartDate: day(t, "2024-03-10"),
			EndDate:   day(t, "2024-03-12"),
			Status:    reservation.StatusCancelled,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		_, err := cmd.Create(context.Background(), guest(uuid.New()), createInput(t, listingID))
		assert.NoError(t, err)
	})

	t.Run("rejects unknown listing", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		_, err := cmd.Create(context.Background(), guest(uuid.New()), createInput(t, uuid.New()))
		assert.ErrorIs(t, err, errs.ErrListingNotFound)
		assert.Empty(t, uow.Reservs)
		assert.Empty(t, uow.Txns)
	})

	t.Run("rejects unknown payment channel", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		listingID := uow.SeedListing(uuid.New(), 15000)
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		in := createInput(t, listingID)
		in.PaymentChannel = "carte_magique"
		_, err := cmd.Create(context.Background(), guest(uuid.New()), in)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestCancelReservation(t *testing.T) {
	t.Run("guest cancel fails every attached transaction", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: guestID,
			Status: reservation.StatusConfirmed,
		})
		txID := uow.SeedTransaction(shared.TransactionSnapshot{
			ReservationID: rsvID,
			Statut:        transaction.StatusPending,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.Cancel(context.Background(), guest(guestID), rsvID, "changement de plan"))

		assert.Equal(t, reservation.StatusCancelled, uow.Reservs[rsvID].Snapshot.Status)
		assert.Equal(t, "changement de plan", uow.Reservs[rsvID].Snapshot.Motif)
		assert.Equal(t, transaction.StatusFailed, uow.Txns[txID].Snapshot.Statut)
	})

	t.Run("stranger cannot cancel and nothing mutates", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: uuid.New(),
			Status: reservation.StatusPending,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.Cancel(context.Background(), guest(uuid.New()), rsvID, "motif")
		assert.ErrorIs(t, err, errs.ErrReservationNotOwned)
		assert.Equal(t, reservation.StatusPending, uow.Reservs[rsvID].Snapshot.Status)
	})

	t.Run("admin may cancel any reservation", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: uuid.New(),
			Status: reservation.StatusPending,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.Cancel(context.Background(), admin(), rsvID, ""))
		assert.Equal(t, reservation.StatusCancelled, uow.Reservs[rsvID].Snapshot.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: guestID,
			Status: reservation.StatusCancelled,
			Motif:  "premier motif",
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.Cancel(context.Background(), guest(guestID), rsvID, ""))
		assert.Equal(t, "premier motif", uow.Reservs[rsvID].Snapshot.Motif)
	})
}

func TestConfirmPayment(t *testing.T) {
	setup := func(t *testing.T, statut transaction.Status) (*fake.UnitOfWork, uuid.UUID, uuid.UUID) {
		t.Helper()
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: uuid.New(),
			HostID: hostID,
			Status: reservation.StatusPending,
			Etat:   payment.StateUnpaid,
		})
		uow.SeedTransaction(shared.TransactionSnapshot{ReservationID: rsvID, Statut: statut})
		return uow, hostID, rsvID
	}

	t.Run("host confirms with a successful transaction", func(t *testing.T) {
		uow, hostID, rsvID := setup(t, transaction.StatusSucceeded)
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.ConfirmPayment(context.Background(), guest(hostID), rsvID))
		assert.True(t, uow.Reservs[rsvID].Snapshot.StatusHote.IsGiven())
		// status and etat untouched
		assert.Equal(t, reservation.StatusPending, uow.Reservs[rsvID].Snapshot.Status)
		assert.Equal(t, payment.StateUnpaid, uow.Reservs[rsvID].Snapshot.Etat)
	})

	t.Run("rejected without a successful transaction", func(t *testing.T) {
		uow, hostID, rsvID := setup(t, transaction.StatusPending)
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.ConfirmPayment(context.Background(), guest(hostID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.False(t, uow.Reservs[rsvID].Snapshot.StatusHote.IsGiven())
	})

	t.Run("rejected for a caller who is not the host", func(t *testing.T) {
		uow, _, rsvID := setup(t, transaction.StatusSucceeded)
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.ConfirmPayment(context.Background(), guest(uuid.New()), rsvID)
		assert.ErrorIs(t, err, errs.ErrReservationNotOwned)
	})

	t.Run("rejected on double confirmation", func(t *testing.T) {
		uow, hostID, rsvID := setup(t, transaction.StatusSucceeded)
		uow.Reservs[rsvID].Snapshot.StatusHote = reservation.ConfirmationGiven
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.ConfirmPayment(context.Background(), guest(hostID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestValidateArrival(t *testing.T) {
	seed := func(uow *fake.UnitOfWork, guestID uuid.UUID, status reservation.Status) uuid.UUID {
		return uow.SeedReservation(shared.ReservationSnapshot{
			UserID: guestID,
			HostID: uuid.New(),
			Status: status,
		})
	}

	t.Run("guest validates once confirmed and settled", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := seed(uow, guestID, reservation.StatusConfirmed)
		uow.SeedTransaction(shared.TransactionSnapshot{
			ReservationID: rsvID,
			Statut:        transaction.StatusSucceeded,
			Etat:          payment.StatePaid,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.ValidateArrival(context.Background(), guest(guestID), rsvID))
		assert.True(t, uow.Reservs[rsvID].Snapshot.StatusClient.IsGiven())
	})

	t.Run("rejected while reservation is still pending", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := seed(uow, guestID, reservation.StatusPending)
		uow.SeedTransaction(shared.TransactionSnapshot{
			ReservationID: rsvID,
			Statut:        transaction.StatusSucceeded,
			Etat:          payment.StatePaid,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.ValidateArrival(context.Background(), guest(guestID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.False(t, uow.Reservs[rsvID].Snapshot.StatusClient.IsGiven())
	})

	t.Run("rejected when payment succeeded but is not fully paid", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := seed(uow, guestID, reservation.StatusConfirmed)
		uow.SeedTransaction(shared.TransactionSnapshot{
			ReservationID: rsvID,
			Statut:        transaction.StatusSucceeded,
			Etat:          payment.StatePartial,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.ValidateArrival(context.Background(), guest(guestID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("rejected for the host", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		rsvID := seed(uow, uuid.New(), reservation.StatusConfirmed)
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.ValidateArrival(context.Background(), guest(uow.Reservs[rsvID].Snapshot.HostID), rsvID)
		assert.ErrorIs(t, err, errs.ErrReservationNotOwned)
	})
}

func TestArchiveReservation(t *testing.T) {
	t.Run("host archives a cancelled reservation with annotated motif", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: uuid.New(),
			HostID: hostID,
			Status: reservation.StatusCancelled,
			Motif:  "annulée par le client",
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.Archive(context.Background(), guest(hostID), rsvID))

		snap := uow.Reservs[rsvID].Snapshot
		require.NotNil(t, snap.ArchivedAt)
		assert.Equal(t, fixedNow, *snap.ArchivedAt)
		assert.Equal(t, "annulée par le client [archivée le 2024-03-01 09:00:00]", snap.Motif)
	})

	t.Run("conflict when reservation is not cancelled", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			HostID: hostID,
			Status: reservation.StatusConfirmed,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.Archive(context.Background(), guest(hostID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Nil(t, uow.Reservs[rsvID].Snapshot.ArchivedAt)
	})

	t.Run("archiving twice conflicts", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			HostID: hostID,
			Status: reservation.StatusCancelled,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.Archive(context.Background(), guest(hostID), rsvID))
		err := cmd.Archive(context.Background(), guest(hostID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("guest cannot archive", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			UserID: guestID,
			HostID: uuid.New(),
			Status: reservation.StatusCancelled,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.Archive(context.Background(), guest(guestID), rsvID)
		assert.ErrorIs(t, err, errs.ErrReservationNotOwned)
	})
}

func TestHostConfirm(t *testing.T) {
	t.Run("owner flips status to confirmed", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			HostID: hostID,
			Status: reservation.StatusPending,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.HostConfirm(context.Background(), guest(hostID), rsvID))
		assert.Equal(t, reservation.StatusConfirmed, uow.Reservs[rsvID].Snapshot.Status)
	})

	t.Run("non-owner gets zero rows and an ownership error", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			HostID: uuid.New(),
			Status: reservation.StatusPending,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.HostConfirm(context.Background(), guest(uuid.New()), rsvID)
		assert.ErrorIs(t, err, errs.ErrReservationNotOwned)
		assert.Equal(t, reservation.StatusPending, uow.Reservs[rsvID].Snapshot.Status)
	})

	t.Run("cancelled never reopens", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		hostID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{
			HostID: hostID,
			Status: reservation.StatusCancelled,
		})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.HostConfirm(context.Background(), guest(hostID), rsvID)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.Equal(t, reservation.StatusCancelled, uow.Reservs[rsvID].Snapshot.Status)
	})
}

func TestDeleteReservation(t *testing.T) {
	t.Run("guest deletes own reservation", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		guestID := uuid.New()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{UserID: guestID})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		require.NoError(t, cmd.Delete(context.Background(), guest(guestID), rsvID))
		assert.Empty(t, uow.Reservs)
	})

	t.Run("stranger delete reports not found", func(t *testing.T) {
		uow := fake.NewUnitOfWork()
		rsvID := uow.SeedReservation(shared.ReservationSnapshot{UserID: uuid.New()})
		cmd := commands.NewReservationCommands(uow, clock.NewMockClock(fixedNow))

		err := cmd.Delete(context.Background(), guest(uuid.New()), rsvID)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
		assert.Len(t, uow.Reservs, 1)
	})
}
