package payments

import (
	"github.com/guptarohit/asciigraph"
	"github.com/samber/lo"
)

const (
	chartHeight = 8
	chartWidth  = 40
)

// Chart renders bucket totals as an ASCII line chart. Fewer than two dated
// buckets produce an empty string.
func Chart(buckets []Bucket, caption string) string {
	dated := lo.Filter(buckets, func(b Bucket, _ int) bool {
		return b.Label != UndatedLabel
	})
	if len(dated) < 2 {
		return ""
	}

	values := lo.Map(dated, func(b Bucket, _ int) float64 {
		return b.Total.InexactFloat64()
	})

	opts := []asciigraph.Option{
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(2),
	}
	if caption != "" {
		opts = append(opts, asciigraph.Caption(caption))
	}
	return asciigraph.Plot(values, opts...)
}
