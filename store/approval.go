package store

import (
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/dgraph-io/badger/v3"
	"github.com/ethereum/go-ethereum/common"
)

const prefixOperatorApproval = "WRAPPER:OPERATOR:APPROVAL:"

func (bs *BadgerStore) WriteTokenApproval(tok *nft.Token, evt *nft.Event) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readMintToken(txn, tok.ID)
		if err != nil {
			return err
		} else if old == nil {
			return nft.ErrInvalidTokenID
		}
		if old.Owner != tok.Owner {
			panic(tok.ID)
		}
		err = bs.writeToken(txn, tok)
		if err != nil {
			return err
		}
		return bs.writeEvent(txn, evt)
	})
}

func (bs *BadgerStore) WriteTokenTransfer(tok *nft.Token, from common.Address, evt *nft.Event) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readMintToken(txn, tok.ID)
		if err != nil {
			return err
		} else if old == nil {
			return nft.ErrInvalidTokenID
		}
		if old.Owner != from {
			return nft.ErrTransferFromIncorrectOwner
		}
		err = bs.writeToken(txn, tok)
		if err != nil {
			return err
		}
		err = bs.addBalance(txn, from, -1)
		if err != nil {
			return err
		}
		err = bs.addBalance(txn, tok.Owner, 1)
		if err != nil {
			return err
		}
		return bs.writeEvent(txn, evt)
	})
}

func (bs *BadgerStore) WriteOperatorApproval(owner, operator common.Address, approved bool, evt *nft.Event) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		key := addressKey(prefixOperatorApproval, owner, operator)
		var err error
		if approved {
			err = txn.Set(key, []byte{1})
		} else {
			err = txn.Delete(key)
		}
		if err != nil {
			return err
		}
		return bs.writeEvent(txn, evt)
	})
}

func (bs *BadgerStore) ReadOperatorApproval(owner, operator common.Address) (bool, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	_, err := txn.Get(addressKey(prefixOperatorApproval, owner, operator))
	if err == badger.ErrKeyNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
