package nft

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wrapper holds the allow-list registry and the minter of bundle claims.
// Every operation runs under the same mutex and commits in one store
// transaction, a failed call leaves no trace.
type Wrapper struct {
	mutex    sync.Mutex
	store    Store
	clock    *Clock
	contract *Contract
}

func Deploy(ctx context.Context, store Store, deployer common.Address, name, symbol string, router common.Address) (*Wrapper, error) {
	if router == (common.Address{}) {
		return nil, &InvalidAddressError{Address: router}
	}
	if deployer == (common.Address{}) {
		return nil, &InvalidAddressError{Address: deployer}
	}
	old, err := store.ReadContract()
	if err != nil {
		return nil, err
	} else if old != nil {
		return nil, ErrAlreadyDeployed
	}

	clock, err := NewClock(store)
	if err != nil {
		return nil, err
	}
	w := &Wrapper{store: store, clock: clock}
	evt, err := w.newEvent(EventOwnershipTransferred,
		"previousOwner", common.Address{}.Hex(),
		"newOwner", deployer.Hex())
	if err != nil {
		return nil, err
	}
	c := &Contract{
		Address:   crypto.CreateAddress(deployer, 0),
		Name:      name,
		Symbol:    symbol,
		Owner:     deployer,
		Router:    router,
		CreatedAt: evt.CreatedAt,
	}
	err = store.WriteContract(c, evt)
	if err != nil {
		return nil, err
	}
	w.contract = c
	logger.Printf("Deploy(%s, %s, %s) => %s\n", name, symbol, router.Hex(), c.Address.Hex())
	return w, nil
}

func Load(ctx context.Context, store Store) (*Wrapper, error) {
	c, err := store.ReadContract()
	if err != nil {
		return nil, err
	} else if c == nil {
		return nil, ErrNotDeployed
	}
	clock, err := NewClock(store)
	if err != nil {
		return nil, err
	}
	return &Wrapper{store: store, clock: clock, contract: c}, nil
}

func (w *Wrapper) Address() common.Address {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.contract.Address
}

func (w *Wrapper) Name() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.contract.Name
}

func (w *Wrapper) Symbol() string {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.contract.Symbol
}

func (w *Wrapper) Owner() common.Address {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.contract.Owner
}

// Contract returns a copy of the deployed configuration.
func (w *Wrapper) Contract() Contract {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return *w.contract
}

func (w *Wrapper) TransferOwnership(caller, newOwner common.Address) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.checkOwner(caller); err != nil {
		return err
	}
	if newOwner == (common.Address{}) {
		return &InvalidAddressError{Address: newOwner}
	}
	return w.setOwner(newOwner)
}

// RenounceOwnership leaves the contract without an owner, all owner gated
// operations fail afterwards.
func (w *Wrapper) RenounceOwnership(caller common.Address) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.checkOwner(caller); err != nil {
		return err
	}
	return w.setOwner(common.Address{})
}

func (w *Wrapper) UniswapRouterAddress() common.Address {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.contract.Router
}

func (w *Wrapper) SetUniswapRouterAddress(caller, router common.Address) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.checkOwner(caller); err != nil {
		return err
	}
	if router == (common.Address{}) {
		return &InvalidAddressError{Address: router}
	}

	evt, err := w.newEvent(EventRouterUpdated,
		"previousRouter", w.contract.Router.Hex(),
		"newRouter", router.Hex())
	if err != nil {
		return err
	}
	c := *w.contract
	c.Router = router
	err = w.store.UpdateContract(&c, evt)
	if err != nil {
		return err
	}
	w.contract = &c
	logger.Verbosef("SetUniswapRouterAddress(%s) => %s\n", caller.Hex(), router.Hex())
	return nil
}

func (w *Wrapper) Events(offset time.Time, limit int) ([]*Event, error) {
	return w.store.ListEvents(offset, limit)
}

func (w *Wrapper) setOwner(owner common.Address) error {
	evt, err := w.newEvent(EventOwnershipTransferred,
		"previousOwner", w.contract.Owner.Hex(),
		"newOwner", owner.Hex())
	if err != nil {
		return err
	}
	c := *w.contract
	c.Owner = owner
	err = w.store.UpdateContract(&c, evt)
	if err != nil {
		return err
	}
	w.contract = &c
	logger.Verbosef("OwnershipTransferred(%s)\n", owner.Hex())
	return nil
}

func (w *Wrapper) checkOwner(caller common.Address) error {
	if w.contract.Owner == (common.Address{}) || caller != w.contract.Owner {
		return &UnauthorizedError{Caller: caller}
	}
	return nil
}

func (w *Wrapper) String() string {
	return fmt.Sprintf("%s(%s)", w.Symbol(), w.Address().Hex())
}
