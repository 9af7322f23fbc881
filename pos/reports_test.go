package pos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sellAt runs a one-item checkout of product 4 (price 5000) with the
// clock pinned to ts.
func sellAt(t *testing.T, a *App, clock *time.Time, ts time.Time) {
	t.Helper()
	*clock = ts
	require.NoError(t, a.AddToCart(4))
	_, err := a.Checkout()
	require.NoError(t, err)
}

func TestReport(t *testing.T) {
	today := time.Date(2026, 6, 15, 14, 0, 0, 0, time.Local)

	clock := today
	a := New(Options{PIN: "1234", Now: func() time.Time { return clock }})

	sellAt(t, a, &clock, time.Date(2026, 5, 30, 10, 0, 0, 0, time.Local)) // last month
	sellAt(t, a, &clock, time.Date(2025, 6, 20, 10, 0, 0, 0, time.Local)) // June, previous year
	sellAt(t, a, &clock, time.Date(2026, 6, 10, 10, 0, 0, 0, time.Local)) // this June, 5 days back
	sellAt(t, a, &clock, today.Add(-2*time.Hour))                         // today
	sellAt(t, a, &clock, today.Add(-1*time.Hour))                         // today

	clock = today
	r := a.Report()

	t.Run("today revenue", func(t *testing.T) {
		assert.Equal(t, int64(10000), r.TodayRevenue)
	})

	t.Run("month revenue matches month of year regardless of year", func(t *testing.T) {
		// June 2025 + June 2026 all count; May does not.
		assert.Equal(t, int64(20000), r.MonthRevenue)
	})

	t.Run("seven day series", func(t *testing.T) {
		require.Len(t, r.Last7Days, 7)
		assert.Equal(t, "9/6", r.Last7Days[0].Label)
		assert.Equal(t, "15/6", r.Last7Days[6].Label)

		var sum int64
		for _, d := range r.Last7Days {
			sum += d.Total
		}
		// 10th of June sale plus the two sales today
		assert.Equal(t, int64(15000), sum)
		assert.Equal(t, int64(5000), r.Last7Days[1].Total)  // June 10
		assert.Equal(t, int64(10000), r.Last7Days[6].Total) // today
		assert.Zero(t, r.Last7Days[2].Total)                // zero-filled gap
	})

	t.Run("recent sorted by id descending", func(t *testing.T) {
		require.Len(t, r.Recent, 5)
		for i := 1; i < len(r.Recent); i++ {
			assert.Greater(t, r.Recent[i-1].ID, r.Recent[i].ID)
		}
	})
}

func TestReportRecentLimit(t *testing.T) {
	clock := time.Date(2026, 6, 15, 9, 0, 0, 0, time.Local)
	a := New(Options{PIN: "1234", Now: func() time.Time { return clock }})

	for i := 0; i < 12; i++ {
		clock = clock.Add(time.Minute)
		require.NoError(t, a.AddToCart(4))
		_, err := a.Checkout()
		require.NoError(t, err)
	}

	r := a.Report()
	require.Len(t, r.Recent, 10)
	assert.Equal(t, a.Transactions()[11].ID, r.Recent[0].ID)
}

func TestReportEmptyLog(t *testing.T) {
	a := newTestApp(t)
	r := a.Report()

	assert.Zero(t, r.TodayRevenue)
	assert.Zero(t, r.MonthRevenue)
	require.Len(t, r.Last7Days, 7)
	for _, d := range r.Last7Days {
		assert.Zero(t, d.Total)
	}
	assert.Empty(t, r.Recent)
}
