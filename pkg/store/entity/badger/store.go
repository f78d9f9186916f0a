package badger

import (
	"context"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/marmos91/dittodrive/pkg/store/entity"
)

// BadgerEntityStore implements entity.Store using BadgerDB for persistence.
//
// This implementation is suitable for deployments where the hierarchy and
// its grants must survive restarts. Each operation runs in its own BadgerDB
// transaction, which provides the per-row atomicity the engine relies on:
// a field write (parent pointer, set insert) commits fully or not at all.
//
// Cross-row sequences (reparenting touches up to three rows) are NOT wrapped
// in a single transaction here; the engine's fixed mutation order keeps a
// concurrent reader's view coherent (old parent or new parent, never both).
type BadgerEntityStore struct {
	// db is the BadgerDB handle (thread-safe, internal MVCC)
	db *badger.DB
}

// BadgerEntityStoreConfig contains configuration for creating a BadgerDB
// entity store.
type BadgerEntityStoreConfig struct {
	// DBPath is the directory where BadgerDB stores its files
	DBPath string `mapstructure:"db_path"`

	// InMemory runs BadgerDB without disk persistence (testing only)
	InMemory bool `mapstructure:"in_memory"`

	// SyncWrites makes every commit fsync before returning
	SyncWrites bool `mapstructure:"sync_writes"`
}

// NewBadgerEntityStore opens (or creates) a BadgerDB-backed entity store.
func NewBadgerEntityStore(ctx context.Context, config BadgerEntityStoreConfig) (*BadgerEntityStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if config.DBPath == "" && !config.InMemory {
		return nil, fmt.Errorf("badger entity store: db_path is required")
	}

	options := badger.DefaultOptions(config.DBPath).
		WithInMemory(config.InMemory).
		WithSyncWrites(config.SyncWrites).
		WithLogger(nil)

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &BadgerEntityStore{db: db}, nil
}

// Healthcheck verifies the database is open and serving reads.
func (store *BadgerEntityStore) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if store.db.IsClosed() {
		return entity.NewIO("badger database is closed", nil)
	}
	return nil
}

// Close flushes and closes the underlying database.
func (store *BadgerEntityStore) Close() error {
	return store.db.Close()
}

// getRaw reads a value by key inside a view transaction.
// Returns ErrNotFound as a StoreError when the key is absent.
func (store *BadgerEntityStore) getRaw(key []byte, notFoundMessage, id string) ([]byte, error) {
	var value []byte
	err := store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, entity.NewNotFound(notFoundMessage, id)
	}
	if err != nil {
		return nil, entity.NewIO("badger read failed", err)
	}
	return value, nil
}

// createRaw stores a value under key, failing when the key already exists.
func (store *BadgerEntityStore) createRaw(key, value []byte, existsMessage, id string) error {
	err := store.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return entity.NewAlreadyExists(existsMessage, id)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, value)
	})
	if err == nil {
		return nil
	}
	var storeErr *entity.StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}
	return entity.NewIO("badger write failed", err)
}

// updateRaw applies a read-modify-write to the value under key inside one
// transaction. The mutate callback receives the decoded current value and
// returns the bytes to store.
func (store *BadgerEntityStore) updateRaw(key []byte, notFoundMessage, id string, mutate func(current []byte) ([]byte, error)) error {
	err := store.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return entity.NewNotFound(notFoundMessage, id)
		}
		if err != nil {
			return err
		}

		current, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}

		updated, err := mutate(current)
		if err != nil {
			return err
		}

		return txn.Set(key, updated)
	})
	if err == nil {
		return nil
	}
	var storeErr *entity.StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}
	return entity.NewIO("badger update failed", err)
}
