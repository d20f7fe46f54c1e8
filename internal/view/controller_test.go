package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerStartsClosed(t *testing.T) {
	c := NewController()
	assert.Equal(t, Closed, c.Current())
}

func TestControllerTransitions(t *testing.T) {
	tests := []struct {
		name string
		ops  []func(*Controller)
		want State
	}{
		{
			name: "open config",
			ops:  []func(*Controller){(*Controller).OpenConfig},
			want: ShowingConfig,
		},
		{
			name: "open holdings",
			ops:  []func(*Controller){(*Controller).OpenHoldings},
			want: ShowingHoldings,
		},
		{
			name: "config then holdings leaves exactly holdings",
			ops:  []func(*Controller){(*Controller).OpenConfig, (*Controller).OpenHoldings},
			want: ShowingHoldings,
		},
		{
			name: "holdings then config leaves exactly config",
			ops:  []func(*Controller){(*Controller).OpenHoldings, (*Controller).OpenConfig},
			want: ShowingConfig,
		},
		{
			name: "close from config",
			ops:  []func(*Controller){(*Controller).OpenConfig, (*Controller).Close},
			want: Closed,
		},
		{
			name: "close when already closed",
			ops:  []func(*Controller){(*Controller).Close},
			want: Closed,
		},
		{
			name: "reopen after close",
			ops:  []func(*Controller){(*Controller).OpenHoldings, (*Controller).Close, (*Controller).OpenConfig},
			want: ShowingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			for _, op := range tt.ops {
				op(c)
			}
			assert.Equal(t, tt.want, c.Current())
		})
	}
}
