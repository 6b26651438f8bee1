//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"loca-api/internal/domain/reservation"
	"loca-api/internal/domain/shared/payment"
	"loca-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("booking starts pending and unpaid", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, payment.StateUnpaid, actual.Etat())
		assert.False(t, actual.StatusClient().IsGiven())
		assert.False(t, actual.StatusHote().IsGiven())
		assert.False(t, actual.IsArchived())
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().WithTotalPrice(0).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNonPositivePrice)

		_, err = builder.NewReservationBuilder().WithTotalPrice(-100).BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrNonPositivePrice)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancel is terminal", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildReconstructed()
		r.Cancel("annulée par le client")

		assert.True(t, r.IsCancelled())
		assert.Equal(t, "annulée par le client", r.Motif())

		assert.ErrorIs(t, r.ConfirmByHost(), reservation.ErrReservationCancelled)
		assert.ErrorIs(t, r.ConfirmPaymentByHost(true), reservation.ErrReservationCancelled)
		assert.ErrorIs(t, r.ValidateArrival(true), reservation.ErrReservationCancelled)
	})

	t.Run("re-cancelling keeps terminal state without clearing motif", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			WithStatus(reservation.StatusCancelled).
			WithMotif("premier motif").
			BuildReconstructed()

		r.Cancel("")
		assert.True(t, r.IsCancelled())
		assert.Equal(t, "premier motif", r.Motif())
	})
}

func TestConfirmPaymentByHost(t *testing.T) {
	t.Run("requires a successful transaction", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()
		err := r.ConfirmPaymentByHost(false)
		assert.ErrorIs(t, err, reservation.ErrNoSuccessfulTransaction)
		assert.False(t, r.StatusHote().IsGiven())
	})

	t.Run("rejects double confirmation", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()
		require.NoError(t, r.ConfirmPaymentByHost(true))
		require.True(t, r.StatusHote().IsGiven())

		err := r.ConfirmPaymentByHost(true)
		assert.ErrorIs(t, err, reservation.ErrPaymentAlreadyConfirmed)
		// flag must not toggle back
		assert.True(t, r.StatusHote().IsGiven())
	})

	t.Run("does not touch status or etat", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildReconstructed()
		require.NoError(t, r.ConfirmPaymentByHost(true))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, payment.StateUnpaid, r.Etat())
	})
}

func TestValidateArrival(t *testing.T) {
	t.Run("rejected before confirmation", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildReconstructed()
		err := r.ValidateArrival(true)
		assert.ErrorIs(t, err, reservation.ErrReservationNotConfirmed)
		assert.False(t, r.StatusClient().IsGiven())
	})

	t.Run("rejected before payment settles", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildReconstructed()
		err := r.ValidateArrival(false)
		assert.ErrorIs(t, err, reservation.ErrPaymentNotSettled)
		assert.False(t, r.StatusClient().IsGiven())
	})

	t.Run("rejected when already validated", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			WithStatus(reservation.StatusConfirmed).
			WithStatusClient(reservation.ConfirmationGiven).
			BuildReconstructed()
		err := r.ValidateArrival(true)
		assert.ErrorIs(t, err, reservation.ErrArrivalAlreadyValidated)
	})

	t.Run("succeeds once confirmed and settled", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).BuildReconstructed()
		require.NoError(t, r.ValidateArrival(true))
		assert.True(t, r.StatusClient().IsGiven())
	})
}

func TestArchive(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 30, 0, 0, time.UTC)

	t.Run("rejected unless cancelled", func(t *testing.T) {
		for _, status := range []reservation.Status{reservation.StatusPending, reservation.StatusConfirmed} {
			r := builder.NewReservationBuilder().WithStatus(status).WithMotif("motif").BuildReconstructed()
			err := r.Archive(now)
			assert.ErrorIs(t, err, reservation.ErrReservationNotCancelled)
			assert.False(t, r.IsArchived())
			assert.Equal(t, "motif", r.Motif())
		}
	})

	t.Run("archives a cancelled reservation exactly once", func(t *testing.T) {
		r := builder.NewReservationBuilder().
			WithStatus(reservation.StatusCancelled).
			WithMotif("annulée").
			BuildReconstructed()

		require.NoError(t, r.Archive(now))
		assert.True(t, r.IsArchived())
		assert.Equal(t, now, *r.ArchivedAt())
		assert.True(t, strings.HasPrefix(r.Motif(), "annulée "))
		assert.Contains(t, r.Motif(), "[archivée le 2024-04-01 10:30:00]")

		err := r.Archive(now.Add(time.Hour))
		assert.ErrorIs(t, err, reservation.ErrAlreadyArchived)
		assert.Equal(t, now, *r.ArchivedAt())
	})

	t.Run("annotation without prior motif", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).BuildReconstructed()
		require.NoError(t, r.Archive(now))
		assert.Equal(t, "[archivée le 2024-04-01 10:30:00]", r.Motif())
	})
}

func TestConfirmByHost(t *testing.T) {
	r := builder.NewReservationBuilder().BuildReconstructed()
	require.NoError(t, r.ConfirmByHost())
	assert.Equal(t, reservation.StatusConfirmed, r.Status())

	// confirming twice stays confirmed
	require.NoError(t, r.ConfirmByHost())
	assert.Equal(t, reservation.StatusConfirmed, r.Status())
}
