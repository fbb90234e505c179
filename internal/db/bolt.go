// Package db persists workshop state. The authoritative state lives in two
// bbolt files: the data file (customers, active bookings, total revenue) and
// the history file (completed bookings). Both are rewritten whole on save and
// read whole at startup; a missing file simply yields an empty store. A third
// artifact, the text audit log, is append-only and never read back.
package db

import (
	"encoding/binary"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"

	"github.com/NayanikaSethi/workshop/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	bucketCustomers = []byte("customers")
	bucketBookings  = []byte("bookings")
	bucketHistory   = []byte("history")
	bucketMeta      = []byte("meta")

	keyTotalRevenue = []byte("total_revenue")
)

// DB owns the two snapshot files. Each save runs inside one write
// transaction, so the file handle work is scoped and released on every exit
// path.
type DB struct {
	data    *bolt.DB
	history *bolt.DB
}

// Open opens (creating if absent) the data and history snapshot files.
func Open(dataPath, historyPath string) (*DB, error) {
	opts := &bolt.Options{Timeout: time.Second}
	data, err := bolt.Open(dataPath, 0o600, opts)
	if err != nil {
		return nil, fmt.Errorf("open data snapshot %s: %w", dataPath, err)
	}
	history, err := bolt.Open(historyPath, 0o600, opts)
	if err != nil {
		data.Close()
		return nil, fmt.Errorf("open history snapshot %s: %w", historyPath, err)
	}
	return &DB{data: data, history: history}, nil
}

// Close releases both snapshot files.
func (d *DB) Close() error {
	err := d.data.Close()
	if herr := d.history.Close(); err == nil {
		err = herr
	}
	return err
}

// SaveData rewrites the main snapshot: customers, active bookings and the
// revenue scalar, in that order.
func (d *DB) SaveData(customers []models.Customer, active []*models.Booking, revenue float64) error {
	err := d.data.Update(func(tx *bolt.Tx) error {
		cb, err := resetBucket(tx, bucketCustomers)
		if err != nil {
			return err
		}
		for i, c := range customers {
			if err := putIndexed(cb, i, c); err != nil {
				return err
			}
		}
		bb, err := resetBucket(tx, bucketBookings)
		if err != nil {
			return err
		}
		for i, b := range active {
			if err := putIndexed(bb, i, b); err != nil {
				return err
			}
		}
		mb, err := resetBucket(tx, bucketMeta)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(revenue)
		if err != nil {
			return err
		}
		return mb.Put(keyTotalRevenue, raw)
	})
	if err != nil {
		return fmt.Errorf("save data snapshot: %w", err)
	}
	return nil
}

// SaveHistory rewrites the history snapshot.
func (d *DB) SaveHistory(history []*models.Booking) error {
	err := d.history.Update(func(tx *bolt.Tx) error {
		hb, err := resetBucket(tx, bucketHistory)
		if err != nil {
			return err
		}
		for i, b := range history {
			if err := putIndexed(hb, i, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save history snapshot: %w", err)
	}
	return nil
}

// LoadData reads the main snapshot. A never-written file returns empty
// collections and zero revenue with no error.
func (d *DB) LoadData() ([]models.Customer, []*models.Booking, float64, error) {
	var (
		customers []models.Customer
		active    []*models.Booking
		revenue   float64
	)
	err := d.data.View(func(tx *bolt.Tx) error {
		if cb := tx.Bucket(bucketCustomers); cb != nil {
			if err := cb.ForEach(func(_, v []byte) error {
				var c models.Customer
				if err := json.Unmarshal(v, &c); err != nil {
					return err
				}
				customers = append(customers, c)
				return nil
			}); err != nil {
				return err
			}
		}
		if bb := tx.Bucket(bucketBookings); bb != nil {
			if err := bb.ForEach(func(_, v []byte) error {
				var b models.Booking
				if err := json.Unmarshal(v, &b); err != nil {
					return err
				}
				active = append(active, &b)
				return nil
			}); err != nil {
				return err
			}
		}
		if mb := tx.Bucket(bucketMeta); mb != nil {
			if raw := mb.Get(keyTotalRevenue); raw != nil {
				if err := json.Unmarshal(raw, &revenue); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, 0, fmt.Errorf("load data snapshot: %w", err)
	}
	return customers, active, revenue, nil
}

// LoadHistory reads the history snapshot.
func (d *DB) LoadHistory() ([]*models.Booking, error) {
	var history []*models.Booking
	err := d.history.View(func(tx *bolt.Tx) error {
		hb := tx.Bucket(bucketHistory)
		if hb == nil {
			return nil
		}
		return hb.ForEach(func(_, v []byte) error {
			var b models.Booking
			if err := json.Unmarshal(v, &b); err != nil {
				return err
			}
			history = append(history, &b)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("load history snapshot: %w", err)
	}
	return history, nil
}

// resetBucket drops and recreates a bucket so each save writes the whole
// sequence from scratch.
func resetBucket(tx *bolt.Tx, name []byte) (*bolt.Bucket, error) {
	if tx.Bucket(name) != nil {
		if err := tx.DeleteBucket(name); err != nil {
			return nil, err
		}
	}
	return tx.CreateBucket(name)
}

// putIndexed stores v under a big-endian sequence key so bbolt's byte-order
// iteration replays insertion order.
func putIndexed(b *bolt.Bucket, i int, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return b.Put(key, raw)
}
