package pickupcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := New()
		require.NoError(t, err)
		assert.Len(t, code, Length)
		assert.Regexp(t, `^[0-9A-Z]{6}$`, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name    string
		stored  string
		entered string
		want    bool
	}{
		{"exact", "AB12CD", "AB12CD", true},
		{"lower case entry", "AB12CD", "ab12cd", true},
		{"surrounding spaces", "AB12CD", "  AB12CD ", true},
		{"full width digits", "AB12CD", "AB１２CD", true},
		{"wrong code", "AB12CD", "WRONG", false},
		{"empty entry", "AB12CD", "", false},
		{"blank entry", "AB12CD", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.stored, tc.entered))
		})
	}
}
