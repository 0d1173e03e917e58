package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidProjectID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"vigilant-art-417714", true},
		{"bigquery-public-data", true},
		{"abcdef", true},
		{"abc", false},
		{"1project", false},
		{"Project-Upper", false},
		{"trailing-", false},
		{"under_score", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidProjectID(tc.id))
		})
	}
}
