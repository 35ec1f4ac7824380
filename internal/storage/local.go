// Package storage provides the embedded key-value fallback the persistence
// gateway writes through when the backend is unreachable. It is the
// durability floor: every save lands here regardless of network outcome.
package storage

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

var (
	bucketCSV     = []byte("csv")
	bucketBackups = []byte("backups")
)

// backupTimestampLayout keeps backup keys lexicographically sortable.
// Nanosecond precision so rapid saves within one second get distinct keys.
const backupTimestampLayout = "2006-01-02T15-04-05.000000000Z"

// Local is a bbolt-backed store of CSV documents keyed by resource path
// (e.g. "/stockcsv/products.csv"), plus a bounded set of timestamped
// backups per path.
type Local struct {
	db         *bolt.DB
	maxBackups int
}

// OpenLocal opens (or creates) the bbolt file at path. maxBackups bounds
// the retained backups per resource; values below 1 keep a single backup.
func OpenLocal(path string, maxBackups int) (*Local, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketCSV); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketBackups)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: init buckets: %w", err)
	}
	if maxBackups < 1 {
		maxBackups = 1
	}
	return &Local{db: db, maxBackups: maxBackups}, nil
}

// Close releases the underlying bbolt file.
func (l *Local) Close() error {
	return l.db.Close()
}

// Get returns the primary copy stored at key, if any. Read failures are
// logged and reported as absence — callers fall through to their defaults.
func (l *Local) Get(key string) (string, bool) {
	var content []byte
	err := l.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketCSV).Get([]byte(key)); v != nil {
			content = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("storage: read failed")
		return "", false
	}
	if content == nil {
		return "", false
	}
	return string(content), true
}

// Save writes the primary copy at key and a timestamped backup alongside
// it, then prunes backups beyond the retention limit. Primary write and
// backup write happen in one transaction.
func (l *Local) Save(key, content string) error {
	timestamp := time.Now().UTC().Format(backupTimestampLayout)
	backupKey := fmt.Sprintf("%s.%s.backup", key, timestamp)

	err := l.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketCSV).Put([]byte(key), []byte(content)); err != nil {
			return err
		}
		backups := tx.Bucket(bucketBackups)
		if err := backups.Put([]byte(backupKey), []byte(content)); err != nil {
			return err
		}
		return pruneBackups(backups, key, l.maxBackups)
	})
	if err != nil {
		return fmt.Errorf("storage: save %s: %w", key, err)
	}
	return nil
}

// Backups lists the retained backup keys for a resource path, oldest
// first.
func (l *Local) Backups(key string) []string {
	var keys []string
	prefix := []byte(key + ".")
	_ = l.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketBackups).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	return keys
}

// pruneBackups deletes the oldest backups for key until at most limit
// remain. Backup keys embed a sortable timestamp, so cursor order is
// chronological.
func pruneBackups(b *bolt.Bucket, key string, limit int) error {
	prefix := []byte(key + ".")
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for len(keys) > limit {
		if err := b.Delete(keys[0]); err != nil {
			return err
		}
		keys = keys[1:]
	}
	return nil
}
