package store

import (
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/dgraph-io/badger/v3"
	"github.com/ethereum/go-ethereum/common"
)

// an allowed token is a key, removal deletes it
const prefixAllowListToken = "WRAPPER:ALLOWLIST:TOKEN:"

func (bs *BadgerStore) WriteTokenAllowances(tokens []common.Address, allowed bool, evts []*nft.Event) error {
	if len(evts) != len(tokens) {
		panic(len(evts))
	}
	return bs.db.Update(func(txn *badger.Txn) error {
		for i, t := range tokens {
			key := addressKey(prefixAllowListToken, t)
			var err error
			if allowed {
				err = txn.Set(key, []byte{1})
			} else {
				err = txn.Delete(key)
			}
			if err != nil {
				return err
			}
			err = bs.writeEvent(txn, evts[i])
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (bs *BadgerStore) ReadTokenAllowance(token common.Address) (bool, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	_, err := txn.Get(addressKey(prefixAllowListToken, token))
	if err == badger.ErrKeyNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (bs *BadgerStore) ListAllowedTokens(limit int) ([]common.Address, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefixAllowListToken)
	it := txn.NewIterator(opts)
	defer it.Close()

	var tokens []common.Address
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		tokens = append(tokens, common.BytesToAddress(key[len(opts.Prefix):]))
		if len(tokens) == limit {
			break
		}
	}
	return tokens, nil
}
