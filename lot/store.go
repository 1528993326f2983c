package lot

import "github.com/agrilotorg/libagrilot-go/account"

// Store persists lot records keyed by derived address. Records are
// opaque fixed-size byte slices; the registry owns the codec.
type Store interface {
	// Put stores a record at addr. It fails with ErrLotExists if a
	// record already occupies the address.
	Put(addr account.ID, record []byte) error

	// Get retrieves the record at addr, or ErrLotNotFound.
	Get(addr account.ID) ([]byte, error)

	// Has checks whether a record occupies addr.
	Has(addr account.ID) (bool, error)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	records map[account.ID][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[account.ID][]byte)}
}

func (s *MemStore) Put(addr account.ID, record []byte) error {
	if _, ok := s.records[addr]; ok {
		return ErrLotExists
	}
	cp := make([]byte, len(record))
	copy(cp, record)
	s.records[addr] = cp
	return nil
}

func (s *MemStore) Get(addr account.ID) ([]byte, error) {
	record, ok := s.records[addr]
	if !ok {
		return nil, ErrLotNotFound
	}
	return record, nil
}

func (s *MemStore) Has(addr account.ID) (bool, error) {
	_, ok := s.records[addr]
	return ok, nil
}
