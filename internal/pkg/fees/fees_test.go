package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 600000.0, Total(500000, 100000))
	assert.Equal(t, 0.0, Total(0, 0))
}

func TestNetPayable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 530000.0, NetPayable(600000, 50000, 20000))
	assert.Equal(t, 600000.0, NetPayable(600000, 0, 0))

	// Scholarships above the total produce a negative payable; it is
	// surfaced as-is, never clamped.
	assert.Equal(t, -10000.0, NetPayable(Total(0, 0), 10000, 0))
}

func TestDerivationChain(t *testing.T) {
	t.Parallel()

	total := Total(500000, 100000)
	net := NetPayable(total, 50000, 20000)
	assert.Equal(t, 530000.0, net)

	// Idempotent: recomputing with unchanged inputs yields the same
	// values.
	assert.Equal(t, total, Total(500000, 100000))
	assert.Equal(t, net, NetPayable(total, 50000, 20000))
}
