package pos

import (
	"fmt"
	"sort"
	"time"

	"taphoa/models"
)

// DayRevenue is one bar of the 7-day chart.
type DayRevenue struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// Report is the read-side projection over the transaction log. Pure
// derivation; computing a report never mutates anything.
type Report struct {
	TodayRevenue int64                `json:"today_revenue"`
	MonthRevenue int64                `json:"month_revenue"`
	Last7Days    []DayRevenue         `json:"last_7_days"`
	Recent       []models.Transaction `json:"recent_transactions"`
}

const recentLimit = 10

// Report aggregates revenue for the reports screen. Month revenue
// matches on month of year only, regardless of year: a June total
// includes every June on record.
func (a *App) Report() Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	r := Report{Last7Days: make([]DayRevenue, 0, 7)}

	byDay := make(map[string]int64)
	for _, t := range a.transactions {
		ts, err := time.Parse(time.RFC3339, t.Date)
		if err != nil {
			continue
		}
		ts = ts.Local()

		day := ts.Format("2006-01-02")
		byDay[day] += t.Total

		if day == now.Format("2006-01-02") {
			r.TodayRevenue += t.Total
		}
		if ts.Month() == now.Month() {
			r.MonthRevenue += t.Total
		}
	}

	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		r.Last7Days = append(r.Last7Days, DayRevenue{
			Label: fmt.Sprintf("%d/%d", d.Day(), int(d.Month())),
			Total: byDay[d.Format("2006-01-02")],
		})
	}

	recent := cloneTransactions(a.transactions)
	sort.Slice(recent, func(i, j int) bool { return recent[i].ID > recent[j].ID })
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	r.Recent = recent

	return r
}
