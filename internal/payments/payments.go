// Package payments aggregates reward payment history into chart buckets.
package payments

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/apriority/miniapp/internal/model"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Period selects the bucket width of the profitability chart.
type Period string

const (
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
	Yearly  Period = "yearly"
)

// Periods lists the selectable periods in toggle order.
var Periods = []Period{Weekly, Monthly, Yearly}

// ParsePeriod maps a query value to a Period, defaulting to weekly.
func ParsePeriod(s string) Period {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(Periods, p) {
		return p
	}
	return Weekly
}

// UndatedLabel marks the bucket collecting payments whose date cannot be parsed.
const UndatedLabel = "—"

// dateLayouts are tried in order; the backend emits the first one.
var dateLayouts = []string{"02.01.2006", "2006-01-02", time.RFC3339}

// ParseDate parses a payment date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized payment date %q", s)
}

// Bucket is the total paid within one period.
type Bucket struct {
	Label string          `json:"label"`
	Start time.Time       `json:"start"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// Bucketize groups payments by period in chronological order. Every payment
// lands in exactly one bucket; payments with unparseable dates are collected
// in a trailing UndatedLabel bucket so no amount is dropped.
func Bucketize(history []model.Payment, period Period) []Bucket {
	buckets := make(map[string]*Bucket)
	var undated *Bucket

	for _, p := range history {
		date, err := ParseDate(p.Date)
		if err != nil {
			if undated == nil {
				undated = &Bucket{Label: UndatedLabel, Total: decimal.Zero}
			}
			undated.Total = undated.Total.Add(p.Amount)
			undated.Count++
			continue
		}

		label, start := bucketKey(date, period)
		b, ok := buckets[label]
		if !ok {
			b = &Bucket{Label: label, Start: start, Total: decimal.Zero}
			buckets[label] = b
		}
		b.Total = b.Total.Add(p.Amount)
		b.Count++
	}

	result := lo.MapToSlice(buckets, func(_ string, b *Bucket) Bucket {
		return *b
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})

	if undated != nil {
		result = append(result, *undated)
	}
	return result
}

// bucketKey returns the display label and the first day of the bucket containing date.
func bucketKey(date time.Time, period Period) (string, time.Time) {
	switch period {
	case Yearly:
		start := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return start.Format("2006"), start
	case Monthly:
		start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start.Format("01.2006"), start
	default:
		year, week := date.ISOWeek()
		// Monday of the ISO week.
		offset := (int(date.Weekday()) + 6) % 7
		start := time.Date(date.Year(), date.Month(), date.Day()-offset, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("%d-W%02d", year, week), start
	}
}

// Total sums payment amounts.
func Total(history []model.Payment) decimal.Decimal {
	return lo.Reduce(history, func(acc decimal.Decimal, p model.Payment, _ int) decimal.Decimal {
		return acc.Add(p.Amount)
	}, decimal.Zero)
}

// BucketTotal sums bucket totals.
func BucketTotal(buckets []Bucket) decimal.Decimal {
	return lo.Reduce(buckets, func(acc decimal.Decimal, b Bucket, _ int) decimal.Decimal {
		return acc.Add(b.Total)
	}, decimal.Zero)
}
