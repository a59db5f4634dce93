package nft

import (
	"math/big"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/ethereum/go-ethereum/common"
)

func (w *Wrapper) Approve(caller, to common.Address, id *big.Int) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	tok, err := w.readToken(id)
	if err != nil {
		return err
	}
	if to == tok.Owner {
		return ErrApprovalToCurrentOwner
	}
	if caller != tok.Owner {
		operator, err := w.store.ReadOperatorApproval(tok.Owner, caller)
		if err != nil {
			return err
		}
		if !operator {
			return &NotApprovedOrOwnerError{Caller: caller, ID: id}
		}
	}

	evt, err := w.newEvent(EventApproval,
		"owner", tok.Owner.Hex(),
		"approved", to.Hex(),
		"tokenId", id.String())
	if err != nil {
		return err
	}
	tok.Approved = to
	return w.store.WriteTokenApproval(tok, evt)
}

func (w *Wrapper) GetApproved(id *big.Int) (common.Address, error) {
	tok, err := w.readToken(id)
	if err != nil {
		return common.Address{}, err
	}
	return tok.Approved, nil
}

func (w *Wrapper) SetApprovalForAll(caller, operator common.Address, approved bool) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if caller == operator {
		return ErrApproveToCaller
	}
	evt, err := w.newEvent(EventApprovalForAll,
		"owner", caller.Hex(),
		"operator", operator.Hex(),
		"approved", boolString(approved))
	if err != nil {
		return err
	}
	return w.store.WriteOperatorApproval(caller, operator, approved, evt)
}

func (w *Wrapper) IsApprovedForAll(owner, operator common.Address) (bool, error) {
	return w.store.ReadOperatorApproval(owner, operator)
}

// TransferFrom moves the identifier, and with it the deposit claim, to a new
// owner and clears the single token approval.
func (w *Wrapper) TransferFrom(caller, from, to common.Address, id *big.Int) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	tok, err := w.readToken(id)
	if err != nil {
		return err
	}
	ok, err := w.isApprovedOrOwner(caller, tok)
	if err != nil {
		return err
	}
	if !ok {
		return &NotApprovedOrOwnerError{Caller: caller, ID: id}
	}
	if tok.Owner != from {
		return ErrTransferFromIncorrectOwner
	}
	if to == (common.Address{}) {
		return ErrTransferToZeroAddress
	}

	evt, err := w.newEvent(EventTransfer,
		"from", from.Hex(),
		"to", to.Hex(),
		"tokenId", id.String())
	if err != nil {
		return err
	}
	tok.Owner = to
	tok.Approved = common.Address{}
	err = w.store.WriteTokenTransfer(tok, from, evt)
	if err != nil {
		return err
	}
	logger.Verbosef("TransferFrom(%s, %s, %s)\n", from.Hex(), to.Hex(), id)
	return nil
}

func (w *Wrapper) isApprovedOrOwner(spender common.Address, tok *Token) (bool, error) {
	if spender == tok.Owner {
		return true, nil
	}
	if tok.Approved != (common.Address{}) && spender == tok.Approved {
		return true, nil
	}
	return w.store.ReadOperatorApproval(tok.Owner, spender)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
