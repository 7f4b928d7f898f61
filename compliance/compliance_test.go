package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]ComplianceMode{"": Permissive, "permissive": Permissive, "strict": Strict} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Parse("lenient")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "strict", Strict.String())
	assert.Equal(t, "ComplianceMode(7)", ComplianceMode(7).String())
}
