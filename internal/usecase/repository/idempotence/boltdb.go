// Package idempotence stores the ids of updates the bot already handled,
// so a redelivered Telegram update is processed at most once.
package idempotence

import (
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("handled_updates")

type BoltDBRepository struct {
	db *bolt.DB
}

func NewBoltDB(db *bolt.DB) (*BoltDBRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &BoltDBRepository{db: db}, nil
}

// MakeRecord marks id as handled. Returns true only on the first call
// for a given id; the check and the write share one bolt transaction.
func (r *BoltDBRepository) MakeRecord(id string) (ok bool, err error) {
	err = r.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket.Get([]byte(id)) != nil {
			ok = false
			return nil
		}

		if err := bucket.Put([]byte(id), []byte{}); err != nil {
			return err
		}

		ok = true
		return nil
	})
	return
}
