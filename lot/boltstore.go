package lot

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/agrilotorg/libagrilot-go/account"
)

var bucketLots = []byte("lots")

// BoltStore wraps a bbolt database for lot record storage.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("lot: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("lot: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketLots); err != nil {
			return fmt.Errorf("boltstore: create bucket %q: %w", bucketLots, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("lot: create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Put stores a record at addr inside a single write transaction, so the
// exists-check and the write are atomic.
func (s *BoltStore) Put(addr account.ID, record []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketLots)
		if b.Get(addr[:]) != nil {
			return fmt.Errorf("%w: %s", ErrLotExists, addr)
		}
		return b.Put(addr[:], record)
	})
}

func (s *BoltStore) Get(addr account.ID) ([]byte, error) {
	var record []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketLots).Get(addr[:])
		if v == nil {
			return fmt.Errorf("%w: %s", ErrLotNotFound, addr)
		}
		record = make([]byte, len(v))
		copy(record, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (s *BoltStore) Has(addr account.ID) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(bucketLots).Get(addr[:]) != nil
		return nil
	})
	return found, err
}
