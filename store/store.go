// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/dicebalance/die"
	"github.com/katalvlaran/dicebalance/optimize"
)

// keyPrefix versions the record layout; bump it when Record changes shape.
const keyPrefix = "result/v1/"

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store: closed")

// Record is one cached optimum.
type Record struct {
	ID          uuid.UUID     `cbor:"1,keyasint"`
	Fingerprint uint64        `cbor:"2,keyasint"`
	Name        string        `cbor:"3,keyasint"`
	Faces       int           `cbor:"4,keyasint"`
	Weights     []int         `cbor:"5,keyasint"`
	Spread      float64       `cbor:"6,keyasint"`
	Candidates  int           `cbor:"7,keyasint"`
	Elapsed     time.Duration `cbor:"8,keyasint"`
	CreatedAt   time.Time     `cbor:"9,keyasint"`
}

// Result converts the record back into an optimize.Result.
func (r Record) Result() optimize.Result {
	return optimize.Result{
		Weights:    slices.Clone(r.Weights),
		Spread:     r.Spread,
		Candidates: r.Candidates,
		Elapsed:    r.Elapsed,
	}
}

// Store caches optimization results in a badger database, keyed by the
// fingerprint of the die descriptor.
type Store struct {
	db  *badger.DB
	enc cbor.EncMode
}

// Open opens (creating if needed) the cache in dir. An empty dir opens an
// in-memory database that vanishes on Close.
func Open(dir string) (*Store, error) {
	dbOpts := badger.DefaultOptions(dir)
	if dir == "" {
		dbOpts = dbOpts.WithInMemory(true)
	}
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", dir)
	}
	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "store: cbor")
	}

	return &Store{db: db, enc: enc}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil

	return errors.Wrap(err, "store: close")
}

// Get returns the cached record for desc, reporting false on a miss.
func (s *Store) Get(desc die.Descriptor) (Record, bool, error) {
	if s.db == nil {
		return Record{}, false, ErrClosed
	}
	fp, err := Fingerprint(desc)
	if err != nil {
		return Record{}, false, err
	}

	var rec Record
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(fp))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, errors.Wrapf(err, "store: get %016x", fp)
	}
	klog.V(2).Infof("store: hit %016x (%s, recorded %s)", fp, rec.Name, rec.CreatedAt.Format(time.RFC3339))

	return rec, true, nil
}

// Put records res as the optimum for desc, replacing any earlier record.
func (s *Store) Put(desc die.Descriptor, res optimize.Result) (Record, error) {
	if s.db == nil {
		return Record{}, ErrClosed
	}
	fp, err := Fingerprint(desc)
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:          uuid.New(),
		Fingerprint: fp,
		Name:        desc.Name,
		Faces:       desc.Faces,
		Weights:     slices.Clone(res.Weights),
		Spread:      res.Spread,
		Candidates:  res.Candidates,
		Elapsed:     res.Elapsed,
		CreatedAt:   time.Now().UTC(),
	}
	val, err := s.enc.Marshal(rec)
	if err != nil {
		return Record{}, errors.Wrap(err, "store: encode")
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(fp), val)
	})
	if err != nil {
		return Record{}, errors.Wrapf(err, "store: put %016x", fp)
	}
	klog.V(2).Infof("store: put %016x (%s) as %s", fp, rec.Name, rec.ID)

	return rec, nil
}

func key(fp uint64) []byte {
	return fmt.Appendf([]byte(keyPrefix), "%016x", fp)
}
