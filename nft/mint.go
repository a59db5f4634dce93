package nft

import (
	"math/big"

	mixincrypto "github.com/MixinNetwork/mixin/crypto"
	"github.com/MixinNetwork/mixin/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// Mint records the deposit of tokens and amounts and assigns the identifier
// to the caller. The checks run in the order of the arguments, the first
// failure is returned and nothing is written.
func (w *Wrapper) Mint(caller common.Address, id *big.Int, tokens []common.Address, amounts []*big.Int) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if len(tokens) != len(amounts) {
		return &InvalidArrayLengthError{TokensLength: len(tokens), AmountsLength: len(amounts)}
	}
	for i, t := range tokens {
		allowed, err := w.store.ReadTokenAllowance(t)
		if err != nil {
			return err
		}
		if !allowed {
			return &TokenNotAllowedError{Token: t}
		}
		if amounts[i] == nil || amounts[i].Sign() <= 0 || amounts[i].BitLen() > 256 {
			return &InvalidTokenAmountError{Token: t, Amount: amounts[i]}
		}
	}

	if !validTokenID(id) {
		return ErrInvalidTokenID
	}
	if caller == (common.Address{}) {
		return ErrMintToZeroAddress
	}
	old, err := w.store.ReadMintToken(id)
	if err != nil {
		return err
	} else if old != nil {
		return ErrTokenAlreadyMinted
	}

	evt, err := w.newEvent(EventTransfer,
		"from", common.Address{}.Hex(),
		"to", caller.Hex(),
		"tokenId", id.String())
	if err != nil {
		return err
	}
	tok := &Token{
		ID:        new(big.Int).Set(id),
		Owner:     caller,
		CreatedAt: evt.CreatedAt,
	}
	dep := &Deposit{
		ID:        new(big.Int).Set(id),
		Minter:    caller,
		Tokens:    append([]common.Address{}, tokens...),
		Amounts:   make([]*big.Int, len(amounts)),
		CreatedAt: evt.CreatedAt,
	}
	for i, a := range amounts {
		dep.Amounts[i] = new(big.Int).Set(a)
	}
	dep.Hash = depositHash(dep)

	err = w.store.WriteMintToken(tok, dep, evt)
	if err != nil {
		return err
	}
	logger.Verbosef("Mint(%s, %s, %d) => %s\n", caller.Hex(), id, len(tokens), dep.Hash)
	return nil
}

func (w *Wrapper) OwnerOf(id *big.Int) (common.Address, error) {
	tok, err := w.readToken(id)
	if err != nil {
		return common.Address{}, err
	}
	return tok.Owner, nil
}

func (w *Wrapper) BalanceOf(owner common.Address) (uint64, error) {
	if owner == (common.Address{}) {
		return 0, &InvalidAddressError{Address: owner}
	}
	return w.store.ReadBalance(owner)
}

func (w *Wrapper) Deposit(id *big.Int) (*Deposit, error) {
	if !validTokenID(id) {
		return nil, ErrInvalidTokenID
	}
	dep, err := w.store.ReadDeposit(id)
	if err != nil {
		return nil, err
	} else if dep == nil {
		return nil, ErrInvalidTokenID
	}
	return dep, nil
}

func (w *Wrapper) readToken(id *big.Int) (*Token, error) {
	if !validTokenID(id) {
		return nil, ErrInvalidTokenID
	}
	tok, err := w.store.ReadMintToken(id)
	if err != nil {
		return nil, err
	} else if tok == nil {
		return nil, ErrInvalidTokenID
	}
	return tok, nil
}

func validTokenID(id *big.Int) bool {
	return id != nil && id.Sign() >= 0 && id.BitLen() <= 256
}

// depositHash commits to the identifier, the minter and every deposited
// pair in order.
func depositHash(dep *Deposit) mixincrypto.Hash {
	buf := math.U256Bytes(new(big.Int).Set(dep.ID))
	buf = append(buf, dep.Minter.Bytes()...)
	for i, t := range dep.Tokens {
		buf = append(buf, t.Bytes()...)
		buf = append(buf, math.U256Bytes(new(big.Int).Set(dep.Amounts[i]))...)
	}
	return mixincrypto.NewHash(buf)
}
