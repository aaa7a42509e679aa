package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "plain mobile number",
			input:    "11987654321",
			expected: "+5511987654321",
		},
		{
			name:     "number with separators",
			input:    "(11) 98765-4321",
			expected: "+5511987654321",
		},
		{
			name:     "number with country code",
			input:    "+5511987654321",
			expected: "+5511987654321",
		},
		{
			name:     "number with trunk zero",
			input:    "011987654321",
			expected: "+5511987654321",
		},
		{
			name:     "landline with ten digits",
			input:    "1134567890",
			expected: "+551134567890",
		},
		{
			name:    "too short",
			input:   "12345",
			wantErr: true,
		},
		{
			name:    "non numeric",
			input:   "abc123",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
