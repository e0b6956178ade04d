// Package store persists named view bookmarks in a bolt database so a deep
// zoom can be found again after restart. Render progress is never stored,
// only the view parameters.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	mandel "mandelview"
)

const bucketBookmarks = "bookmarks"

// ErrNotFound is returned when no bookmark exists under the given name.
var ErrNotFound = errors.New("bookmark not found")

// View is the persisted form of a bookmark: everything that identifies a
// place in the set, without the buffer dimensions it gets rendered at.
type View struct {
	Re         float64 `json:"re"`
	Im         float64 `json:"im"`
	RealDomain float64 `json:"real_domain"`
	Iterations uint32  `json:"iterations"`
}

// ViewOf extracts the persistable part of p.
func ViewOf(p mandel.Params) View {
	return View{
		Re:         real(p.Center),
		Im:         imag(p.Center),
		RealDomain: p.RealDomain,
		Iterations: p.Iterations,
	}
}

// Params rebuilds full view parameters at the given buffer size.
func (v View) Params(width, height uint32) mandel.Params {
	return mandel.Params{
		Center:     complex(v.Re, v.Im),
		Width:      width,
		Height:     height,
		RealDomain: v.RealDomain,
		Iterations: v.Iterations,
	}
}

// Store is a bookmark database backed by a single bolt file.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bookmark database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bookmark db %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketBookmarks))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize bookmark bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores v under name, overwriting any previous bookmark of that name.
func (s *Store) Save(name string, v View) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal bookmark %q: %w", name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketBookmarks)).Put([]byte(name), data)
	})
}

// Get returns the bookmark stored under name.
func (s *Store) Get(name string) (View, error) {
	var v View
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketBookmarks)).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return json.Unmarshal(data, &v)
	})
	return v, err
}

// Delete removes the bookmark stored under name, if any.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketBookmarks)).Delete([]byte(name))
	})
}

// Names lists all bookmark names in lexical order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketBookmarks)).Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			names = append(names, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
