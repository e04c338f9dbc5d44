// Package altcache persists word-alternates results between runs so a
// warm server answers repeat queries without recomputing expansions.
package altcache

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v3"
)

const keyPrefix = "alt:"

// Cache is a badger-backed store of expansion results keyed by the
// normalized input word.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) the cache at dir.
func Open(dir string) (*Cache, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Get returns the cached alternates for word and whether an entry
// existed.
func (c *Cache) Get(word string) ([]string, bool, error) {
	var alts []string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + word))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &alts)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return alts, true, nil
}

// Put stores the alternates for word.
func (c *Cache) Put(word string, alts []string) error {
	val, err := json.Marshal(alts)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+word), val)
	})
}

// Close flushes and closes the underlying store.
func (c *Cache) Close() error {
	return c.db.Close()
}
