package store

import (
	"context"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/dgraph-io/badger/v3"
)

var _ nft.Store = (*BadgerStore)(nil)

type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens the store at path, an empty path keeps everything in
// memory and is meant for tests.
func OpenBadger(ctx context.Context, path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(&badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-time.After(5 * time.Minute):
				}
				lsm, vlog := db.Size()
				logger.Printf("Badger LSM %d VLOG %d\n", lsm, vlog)
				if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
					err := db.RunValueLogGC(0.5)
					logger.Printf("Badger RunValueLogGC %v\n", err)
				}
			}
		}()
	}

	return &BadgerStore{
		db: db,
	}, nil
}

func (bs *BadgerStore) Close() error {
	return bs.db.Close()
}

func (bs *BadgerStore) Badger() *badger.DB {
	return bs.db
}

func (bs *BadgerStore) WriteProperty(key, val []byte) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

func (bs *BadgerStore) ReadProperty(key []byte) ([]byte, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
