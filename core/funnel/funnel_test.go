package funnel

import (
	"math"
	"testing"

	"github.com/SailerAI/arco-pricing/core/types"
)

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestPropagate(t *testing.T) {
	tests := []struct {
		name  string
		leads float64
		rates types.FunnelRates
		want  types.FunnelCounts
	}{
		{
			name:  "reference scenario",
			leads: 2500,
			rates: types.FunnelRates{Response: 0.15, Qualification: 0.25, Booking: 0.33},
			want:  types.FunnelCounts{Replies: 375.0, NoReplies: 2125.0, Qualified: 93.75, Booked: 30.9375},
		},
		{
			name:  "zero leads",
			leads: 0,
			rates: types.FunnelRates{Response: 0.5, Qualification: 0.5, Booking: 0.5},
			want:  types.FunnelCounts{},
		},
		{
			name:  "zero response empties the funnel tail",
			leads: 1000,
			rates: types.FunnelRates{Response: 0, Qualification: 0.5, Booking: 0.5},
			want:  types.FunnelCounts{NoReplies: 1000},
		},
		{
			name:  "full conversion",
			leads: 100,
			rates: types.FunnelRates{Response: 1, Qualification: 1, Booking: 1},
			want:  types.FunnelCounts{Replies: 100, Qualified: 100, Booked: 100},
		},
		{
			name:  "fractional counts are kept",
			leads: 3,
			rates: types.FunnelRates{Response: 0.5, Qualification: 0.5, Booking: 0.5},
			want:  types.FunnelCounts{Replies: 1.5, NoReplies: 1.5, Qualified: 0.75, Booked: 0.375},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Propagate(tt.leads, tt.rates)
			if !approx(got.Replies, tt.want.Replies) {
				t.Errorf("Replies = %v, want %v", got.Replies, tt.want.Replies)
			}
			if !approx(got.NoReplies, tt.want.NoReplies) {
				t.Errorf("NoReplies = %v, want %v", got.NoReplies, tt.want.NoReplies)
			}
			if !approx(got.Qualified, tt.want.Qualified) {
				t.Errorf("Qualified = %v, want %v", got.Qualified, tt.want.Qualified)
			}
			if !approx(got.Booked, tt.want.Booked) {
				t.Errorf("Booked = %v, want %v", got.Booked, tt.want.Booked)
			}
		})
	}
}

func TestPropagateConservesVolume(t *testing.T) {
	rates := types.FunnelRates{Response: 0.37, Qualification: 0.41, Booking: 0.29}
	counts := Propagate(1234, rates)
	if !approx(counts.Replies+counts.NoReplies, 1234) {
		t.Fatalf("replies (%v) + no replies (%v) != total", counts.Replies, counts.NoReplies)
	}
}
