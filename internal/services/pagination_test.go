package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLimit(t *testing.T) {
	cases := []struct {
		name string
		in   *int
		want int
	}{
		{"absent", nil, DefaultPageLimit},
		{"zero", intPtr(0), DefaultPageLimit},
		{"negative", intPtr(-5), DefaultPageLimit},
		{"within range", intPtr(20), 20},
		{"at max", intPtr(MaxPageLimit), MaxPageLimit},
		{"above max", intPtr(1000), MaxPageLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeLimit(tc.in, DefaultPageLimit))
		})
	}
}

func TestNormalizeOffset(t *testing.T) {
	assert.Equal(t, 0, normalizeOffset(nil))
	assert.Equal(t, 0, normalizeOffset(intPtr(-1)))
	assert.Equal(t, 7, normalizeOffset(intPtr(7)))
}
