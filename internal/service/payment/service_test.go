package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{name: "typical price", price: 19.99, want: 1999},
		{name: "whole amount", price: 25, want: 2500},
		{name: "sub-cent fraction truncates", price: 10.999, want: 1099},
		{name: "zero", price: 0, want: 0},
		{name: "small amount", price: 0.5, want: 50},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MinorUnits(tt.price))
		})
	}
}
