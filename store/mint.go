package store

import (
	"encoding/binary"
	"math/big"
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/mixin/crypto"
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/dgraph-io/badger/v3"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

const (
	prefixMintTokenPayload   = "WRAPPER:MINT:TOKEN:"
	prefixMintDepositPayload = "WRAPPER:MINT:DEPOSIT:"
	prefixMintBalance        = "WRAPPER:MINT:BALANCE:"
)

type tokenRecord struct {
	ID        []byte
	Owner     []byte
	Approved  []byte
	CreatedAt time.Time
}

type depositRecord struct {
	ID        []byte
	Minter    []byte
	Tokens    [][]byte
	Amounts   []string
	Hash      crypto.Hash
	CreatedAt time.Time
}

func (bs *BadgerStore) WriteMintToken(tok *nft.Token, dep *nft.Deposit, evt *nft.Event) error {
	if tok.ID.Cmp(dep.ID) != 0 {
		panic(dep.ID)
	}
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readMintToken(txn, tok.ID)
		if err != nil {
			return err
		} else if old != nil {
			return nft.ErrTokenAlreadyMinted
		}

		err = bs.writeToken(txn, tok)
		if err != nil {
			return err
		}
		err = bs.writeDeposit(txn, dep)
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

func (bs *BadgerStore) ReadMintToken(id *big.Int) (*nft.Token, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readMintToken(txn, id)
}

func (bs *BadgerStore) ReadDeposit(id *big.Int) (*nft.Deposit, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	item, err := txn.Get(idKey(prefixMintDepositPayload, id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var r depositRecord
	err = common.MsgpackUnmarshal(val, &r)
	if err != nil {
		return nil, err
	}
	dep := &nft.Deposit{
		ID:        new(big.Int).SetBytes(r.ID),
		Minter:    ethcommon.BytesToAddress(r.Minter),
		Tokens:    make([]ethcommon.Address, len(r.Tokens)),
		Amounts:   make([]*big.Int, len(r.Amounts)),
		Hash:      r.Hash,
		CreatedAt: r.CreatedAt,
	}
	for i, t := range r.Tokens {
		dep.Tokens[i] = ethcommon.BytesToAddress(t)
	}
	for i, a := range r.Amounts {
		amt, ok := new(big.Int).SetString(a, 10)
		if !ok {
			panic(a)
		}
		dep.Amounts[i] = amt
	}
	return dep, nil
}

func (bs *BadgerStore) ReadBalance(owner ethcommon.Address) (uint64, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readBalance(txn, owner)
}

func (bs *BadgerStore) readMintToken(txn *badger.Txn, id *big.Int) (*nft.Token, error) {
	item, err := txn.Get(idKey(prefixMintTokenPayload, id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var r tokenRecord
	err = common.MsgpackUnmarshal(val, &r)
	if err != nil {
		return nil, err
	}
	return &nft.Token{
		ID:        new(big.Int).SetBytes(r.ID),
		Owner:     ethcommon.BytesToAddress(r.Owner),
		Approved:  ethcommon.BytesToAddress(r.Approved),
		CreatedAt: r.CreatedAt,
	}, nil
}

func (bs *BadgerStore) writeToken(txn *badger.Txn, tok *nft.Token) error {
	r := &tokenRecord{
		ID:        idToBytes(tok.ID),
		Owner:     tok.Owner.Bytes(),
		Approved:  tok.Approved.Bytes(),
		CreatedAt: tok.CreatedAt,
	}
	return txn.Set(idKey(prefixMintTokenPayload, tok.ID), common.MsgpackMarshalPanic(r))
}

func (bs *BadgerStore) writeDeposit(txn *badger.Txn, dep *nft.Deposit) error {
	if len(dep.Tokens) != len(dep.Amounts) {
		panic(dep.ID)
	}
	r := &depositRecord{
		ID:        idToBytes(dep.ID),
		Minter:    dep.Minter.Bytes(),
		Tokens:    make([][]byte, len(dep.Tokens)),
		Amounts:   make([]string, len(dep.Amounts)),
		Hash:      dep.Hash,
		CreatedAt: dep.CreatedAt,
	}
	for i, t := range dep.Tokens {
		r.Tokens[i] = t.Bytes()
	}
	for i, a := range dep.Amounts {
		r.Amounts[i] = a.String()
	}
	return txn.Set(idKey(prefixMintDepositPayload, dep.ID), common.MsgpackMarshalPanic(r))
}

func (bs *BadgerStore) readBalance(txn *badger.Txn, owner ethcommon.Address) (uint64, error) {
	item, err := txn.Get(addressKey(prefixMintBalance, owner))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(val), nil
}

func (bs *BadgerStore) addBalance(txn *badger.Txn, owner ethcommon.Address, delta int64) error {
	balance, err := bs.readBalance(txn, owner)
	if err != nil {
		return err
	}
	if delta < 0 && balance < uint64(-delta) {
		panic(owner.Hex())
	}
	balance = uint64(int64(balance) + delta)
	key := addressKey(prefixMintBalance, owner)
	if balance == 0 {
		return txn.Delete(key)
	}
	return txn.Set(key, binary.BigEndian.AppendUint64(nil, balance))
}
