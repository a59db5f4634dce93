package nft

import (
	"github.com/MixinNetwork/mixin/logger"
	"github.com/ethereum/go-ethereum/common"
)

func (w *Wrapper) AddAllowedToken(caller, token common.Address) error {
	return w.AddAllowedTokens(caller, []common.Address{token})
}

func (w *Wrapper) RemoveAllowedToken(caller, token common.Address) error {
	return w.RemoveAllowedTokens(caller, []common.Address{token})
}

// AddAllowedTokens validates the whole batch before writing anything, the
// first zero address aborts the call.
func (w *Wrapper) AddAllowedTokens(caller common.Address, tokens []common.Address) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.checkOwner(caller); err != nil {
		return err
	}
	for _, t := range tokens {
		if t == (common.Address{}) {
			return &InvalidAddressError{Address: t}
		}
	}
	return w.writeAllowances(tokens, true, EventAllowedTokenAdded)
}

func (w *Wrapper) RemoveAllowedTokens(caller common.Address, tokens []common.Address) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.checkOwner(caller); err != nil {
		return err
	}
	return w.writeAllowances(tokens, false, EventAllowedTokenRemoved)
}

// TokenAllowance reports the allow-list membership, absent tokens are not
// allowed.
func (w *Wrapper) TokenAllowance(token common.Address) (bool, error) {
	return w.store.ReadTokenAllowance(token)
}

func (w *Wrapper) AllowedTokens(limit int) ([]common.Address, error) {
	return w.store.ListAllowedTokens(limit)
}

func (w *Wrapper) writeAllowances(tokens []common.Address, allowed bool, name string) error {
	if len(tokens) == 0 {
		return nil
	}
	evts := make([]*Event, len(tokens))
	for i, t := range tokens {
		evt, err := w.newEvent(name, "token", t.Hex())
		if err != nil {
			return err
		}
		evts[i] = evt
	}
	err := w.store.WriteTokenAllowances(tokens, allowed, evts)
	if err != nil {
		return err
	}
	logger.Verbosef("%s(%d) => %v\n", name, len(tokens), allowed)
	return nil
}
