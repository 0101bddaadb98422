package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotAvailableNeverNegative(t *testing.T) {
	cases := []struct {
		capacity, booked, want int
	}{
		{20, 5, 15},
		{20, 20, 0},
		{10, 14, 0},
		{0, 0, 0},
		{0, 3, 0},
	}
	for _, tc := range cases {
		s := Slot{Capacity: tc.capacity, Booked: tc.booked}
		got := s.Available()
		assert.Equal(t, tc.want, got, "capacity=%d booked=%d", tc.capacity, tc.booked)
		assert.GreaterOrEqual(t, got, 0)
	}
}
