package lot

import (
	"encoding/binary"
	"fmt"

	"github.com/agrilotorg/libagrilot-go/account"
)

const (
	nameLenSize = 2

	// RecordSize is the fixed on-disk size of a lot record:
	// owner(32) + name_len(2) + name(40) + yield(8) + harvest(8) + mint(32).
	// Records are always written at this exact size, with the name field
	// zero-padded, so a stored lot never needs to be resized.
	RecordSize = account.IDSize + nameLenSize + MaxNameBytes + 8 + 8 + account.IDSize
)

// SerializeLot encodes a lot to its fixed-size binary record.
func SerializeLot(l *Lot) ([]byte, error) {
	name := []byte(l.Name)
	if len(name) > MaxNameBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrNameTooLong, len(name), MaxNameBytes)
	}

	buf := make([]byte, RecordSize)
	offset := 0

	copy(buf[offset:offset+account.IDSize], l.Owner[:])
	offset += account.IDSize

	binary.BigEndian.PutUint16(buf[offset:offset+nameLenSize], uint16(len(name)))
	offset += nameLenSize

	copy(buf[offset:offset+MaxNameBytes], name)
	offset += MaxNameBytes

	binary.BigEndian.PutUint64(buf[offset:offset+8], l.YieldEstimate)
	offset += 8

	binary.BigEndian.PutUint64(buf[offset:offset+8], uint64(l.HarvestTime))
	offset += 8

	copy(buf[offset:offset+account.IDSize], l.TokenMint[:])
	return buf, nil
}

// DeserializeLot decodes a fixed-size binary record into a lot.
func DeserializeLot(data []byte) (*Lot, error) {
	if len(data) != RecordSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidRecord, RecordSize, len(data))
	}
	offset := 0

	l := &Lot{}
	copy(l.Owner[:], data[offset:offset+account.IDSize])
	offset += account.IDSize

	nameLen := int(binary.BigEndian.Uint16(data[offset : offset+nameLenSize]))
	offset += nameLenSize
	if nameLen > MaxNameBytes {
		return nil, fmt.Errorf("%w: name length %d exceeds %d", ErrInvalidRecord, nameLen, MaxNameBytes)
	}

	l.Name = string(data[offset : offset+nameLen])
	offset += MaxNameBytes

	l.YieldEstimate = binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8

	l.HarvestTime = int64(binary.BigEndian.Uint64(data[offset : offset+8]))
	offset += 8

	copy(l.TokenMint[:], data[offset:offset+account.IDSize])
	return l, nil
}
