package lot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeLot_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lot  *Lot
	}{
		{"typical", &Lot{
			Owner: makeID(0x01), Name: "north field",
			YieldEstimate: 500, HarvestTime: 1800000000, TokenMint: makeID(0x02),
		}},
		{"empty name", &Lot{
			Owner: makeID(0x03), YieldEstimate: 1, HarvestTime: 1, TokenMint: makeID(0x04),
		}},
		{"name at max", &Lot{
			Owner: makeID(0x05), Name: "0123456789012345678901234567890123456789",
			YieldEstimate: 42, HarvestTime: -1, TokenMint: makeID(0x06),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := SerializeLot(tt.lot)
			require.NoError(t, err)

			decoded, err := DeserializeLot(data)
			require.NoError(t, err)
			assert.Equal(t, tt.lot, decoded)
		})
	}
}

func TestSerializeLot_FixedSize(t *testing.T) {
	short, err := SerializeLot(&Lot{Owner: makeID(0x01), Name: "a", YieldEstimate: 1, HarvestTime: 1, TokenMint: makeID(0x02)})
	require.NoError(t, err)
	long, err := SerializeLot(&Lot{Owner: makeID(0x01), Name: "0123456789012345678901234567890123456789", YieldEstimate: 1, HarvestTime: 1, TokenMint: makeID(0x02)})
	require.NoError(t, err)

	// owner(32) + name_len(2) + name(40) + yield(8) + harvest(8) + mint(32)
	assert.Len(t, short, 122)
	assert.Len(t, long, 122)
	assert.Equal(t, RecordSize, 122)
}

func TestSerializeLot_NameTooLong(t *testing.T) {
	_, err := SerializeLot(&Lot{Name: "0123456789012345678901234567890123456789X"})
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestDeserializeLot_WrongSize(t *testing.T) {
	_, err := DeserializeLot([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = DeserializeLot(make([]byte, RecordSize+1))
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestDeserializeLot_CorruptNameLength(t *testing.T) {
	data, err := SerializeLot(&Lot{Owner: makeID(0x01), Name: "a", YieldEstimate: 1, HarvestTime: 1, TokenMint: makeID(0x02)})
	require.NoError(t, err)

	// name_len sits right after the owner field.
	data[32] = 0xFF
	data[33] = 0xFF
	_, err = DeserializeLot(data)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
