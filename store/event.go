package store

import (
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/dgraph-io/badger/v3"
	"github.com/gofrs/uuid"
)

const (
	prefixEventPayload = "WRAPPER:EVENT:PAYLOAD:"
	prefixEventQueue   = "WRAPPER:EVENT:QUEUE:"
)

type eventRecord struct {
	ID        string
	Name      string
	Fields    map[string]string
	CreatedAt time.Time
}

// ListEvents returns the events created at or after offset, oldest first.
func (bs *BadgerStore) ListEvents(offset time.Time, limit int) ([]*nft.Event, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefixEventQueue)
	it := txn.NewIterator(opts)
	defer it.Close()

	seek := opts.Prefix
	if !offset.IsZero() {
		seek = append([]byte(prefixEventQueue), tsToBytes(offset)...)
	}
	var evts []*nft.Event
	for it.Seek(seek); it.Valid(); it.Next() {
		key := it.Item().Key()
		id, err := uuid.FromBytes(key[len(opts.Prefix)+8:])
		if err != nil {
			return nil, err
		}
		evt, err := bs.readEvent(txn, id)
		if err != nil {
			return nil, err
		}
		evts = append(evts, evt)
		if len(evts) == limit {
			break
		}
	}
	return evts, nil
}

func (bs *BadgerStore) writeEvent(txn *badger.Txn, evt *nft.Event) error {
	id, err := uuid.FromString(evt.ID)
	if err != nil {
		return err
	}
	key := append([]byte(prefixEventPayload), id.Bytes()...)
	_, err = txn.Get(key)
	if err == nil {
		panic(evt.ID)
	} else if err != badger.ErrKeyNotFound {
		return err
	}

	val := common.MsgpackMarshalPanic(&eventRecord{
		ID:        evt.ID,
		Name:      evt.Name,
		Fields:    evt.Fields,
		CreatedAt: evt.CreatedAt,
	})
	err = txn.Set(key, val)
	if err != nil {
		return err
	}
	return txn.Set(buildEventTimedKey(evt.CreatedAt, id), []byte{1})
}

func (bs *BadgerStore) readEvent(txn *badger.Txn, id uuid.UUID) (*nft.Event, error) {
	key := append([]byte(prefixEventPayload), id.Bytes()...)
	item, err := txn.Get(key)
	if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var r eventRecord
	err = common.MsgpackUnmarshal(val, &r)
	if err != nil {
		return nil, err
	}
	return &nft.Event{
		ID:        r.ID,
		Name:      r.Name,
		Fields:    r.Fields,
		CreatedAt: r.CreatedAt,
	}, nil
}

func buildEventTimedKey(ts time.Time, id uuid.UUID) []byte {
	key := append([]byte(prefixEventQueue), tsToBytes(ts)...)
	return append(key, id.Bytes()...)
}
