//go:build unit

package daterange_test

import (
	"testing"
	"time"

	"loca-api/internal/domain/shared/daterange"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, start, end string) daterange.DateRange {
	t.Helper()
	s, err := time.Parse(daterange.DayFormat, start)
	require.NoError(t, err)
	e, err := time.Parse(daterange.DayFormat, end)
	require.NoError(t, err)
	r, err := daterange.New(s, e)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("rejects inverted range", func(t *testing.T) {
		end, _ := time.Parse(daterange.DayFormat, "2024-03-10")
		start, _ := time.Parse(daterange.DayFormat, "2024-03-12")
		_, err := daterange.New(start, end)
		assert.ErrorIs(t, err, daterange.ErrEndBeforeStart)
	})

	t.Run("normalizes to noon UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+11", 11*60*60)
		late := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)
		r, err := daterange.New(late, late)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), r.Start())
	})
}

func TestDayStrings(t *testing.T) {
	t.Run("inclusive expansion", func(t *testing.T) {
		r := mustRange(t, "2024-03-10", "2024-03-12")
		want := []string{"2024-03-10", "2024-03-11", "2024-03-12"}
		if diff := cmp.Diff(want, r.DayStrings()); diff != "" {
			t.Errorf("day expansion mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single day", func(t *testing.T) {
		r := mustRange(t, "2024-03-10", "2024-03-10")
		assert.Equal(t, []string{"2024-03-10"}, r.DayStrings())
	})

	t.Run("month boundary", func(t *testing.T) {
		r := mustRange(t, "2024-01-30", "2024-02-02")
		want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
		assert.Equal(t, want, r.DayStrings())
	})
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, "2024-03-10", "2024-03-15")

	cases := []struct {
		name  string
		other daterange.DateRange
		want  bool
	}{
		{"identical", mustRange(t, "2024-03-10", "2024-03-15"), true},
		{"contained", mustRange(t, "2024-03-11", "2024-03-12"), true},
		{"touching end day", mustRange(t, "2024-03-15", "2024-03-20"), true},
		{"touching start day", mustRange(t, "2024-03-05", "2024-03-10"), true},
		{"before", mustRange(t, "2024-03-01", "2024-03-09"), false},
		{"after", mustRange(t, "2024-03-16", "2024-03-20"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
		})
	}
}

func TestClampAndNights(t *testing.T) {
	t.Run("same-day stay has zero nights", func(t *testing.T) {
		r := mustRange(t, "2024-03-10", "2024-03-10")
		assert.Equal(t, 0, r.Nights())
	})

	t.Run("clamped span counts end-exclusive nights", func(t *testing.T) {
		stay := mustRange(t, "2024-01-28", "2024-02-03")
		query := mustRange(t, "2024-02-01", "2024-02-29")

		clamped, ok := stay.ClampTo(query)
		require.True(t, ok)
		assert.Equal(t, 2, clamped.Nights())

		nights := clamped.NightDates()
		require.Len(t, nights, 2)
		assert.Equal(t, time.February, nights[0].Month())
		assert.Equal(t, time.February, nights[1].Month())
	})

	t.Run("disjoint clamp fails", func(t *testing.T) {
		stay := mustRange(t, "2024-01-01", "2024-01-05")
		query := mustRange(t, "2024-02-01", "2024-02-29")
		_, ok := stay.ClampTo(query)
		assert.False(t, ok)
	})
}
