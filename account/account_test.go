package account

import (
	"strings"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPublicKey_Deterministic(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	a := FromPublicKey(priv.PubKey())
	b := FromPublicKey(priv.PubKey())
	assert.Equal(t, a, b)
	assert.False(t, a.IsZero())
}

func TestFromPublicKey_DistinctKeys(t *testing.T) {
	priv1, err := ec.NewPrivateKey()
	require.NoError(t, err)
	priv2, err := ec.NewPrivateKey()
	require.NoError(t, err)

	assert.NotEqual(t, FromPublicKey(priv1.PubKey()), FromPublicKey(priv2.PubKey()))
}

func TestStringRoundTrip(t *testing.T) {
	var id ID
	for i := range id {
		id[i] = byte(i)
	}

	parsed, err := FromString(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
	assert.Len(t, id.String(), 64)
}

func TestFromString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"too short", "0102"},
		{"too long", strings.Repeat("ab", 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromString(tt.in)
			assert.ErrorIs(t, err, ErrInvalidID)
		})
	}
}

func TestFromBytes_WrongSize(t *testing.T) {
	_, err := FromBytes([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Zero.IsZero())

	var id ID
	id[31] = 1
	assert.False(t, id.IsZero())
}
