package store

import (
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/dgraph-io/badger/v3"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const prefixContractPayload = "WRAPPER:CONTRACT:PAYLOAD"

type contractRecord struct {
	Address   []byte
	Name      string
	Symbol    string
	Owner     []byte
	Router    []byte
	CreatedAt time.Time
}

func (bs *BadgerStore) WriteContract(c *nft.Contract, evt *nft.Event) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readContract(txn)
		if err != nil {
			return err
		} else if old != nil {
			return nft.ErrAlreadyDeployed
		}
		err = bs.writeContract(txn, c)
		if err != nil {
			return err
		}
		return bs.writeEvent(txn, evt)
	})
}

func (bs *BadgerStore) UpdateContract(c *nft.Contract, evt *nft.Event) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readContract(txn)
		if err != nil {
			return err
		} else if old == nil {
			return nft.ErrNotDeployed
		}
		if old.Address != c.Address {
			panic(c.Address.Hex())
		}
		err = bs.writeContract(txn, c)
		if err != nil {
			return err
		}
		return bs.writeEvent(txn, evt)
	})
}

func (bs *BadgerStore) ReadContract() (*nft.Contract, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readContract(txn)
}

func (bs *BadgerStore) writeContract(txn *badger.Txn, c *nft.Contract) error {
	r := &contractRecord{
		Address:   c.Address.Bytes(),
		Name:      c.Name,
		Symbol:    c.Symbol,
		Owner:     c.Owner.Bytes(),
		Router:    c.Router.Bytes(),
		CreatedAt: c.CreatedAt,
	}
	return txn.Set([]byte(prefixContractPayload), common.MsgpackMarshalPanic(r))
}

func (bs *BadgerStore) readContract(txn *badger.Txn) (*nft.Contract, error) {
	item, err := txn.Get([]byte(prefixContractPayload))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var r contractRecord
	err = common.MsgpackUnmarshal(val, &r)
	if err != nil {
		return nil, err
	}
	return &nft.Contract{
		Address:   ethcommon.BytesToAddress(r.Address),
		Name:      r.Name,
		Symbol:    r.Symbol,
		Owner:     ethcommon.BytesToAddress(r.Owner),
		Router:    ethcommon.BytesToAddress(r.Router),
		CreatedAt: r.CreatedAt,
	}, nil
}
