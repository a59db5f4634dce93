package nft

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Run executes an ABI encoded call on behalf of caller and returns the ABI
// encoded outputs. A failed call returns the typed error, RevertData turns it
// into the bytes an EVM caller would see.
func (w *Wrapper) Run(caller common.Address, input []byte) ([]byte, error) {
	if len(input) < 4 {
		return nil, ErrExecutionReverted
	}
	method, err := wrapperABI.MethodById(input[:4])
	if err != nil {
		return nil, ErrExecutionReverted
	}
	args, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return nil, ErrExecutionReverted
	}

	switch method.Name {
	case "name":
		return encodeOutput(method.Name, w.Name())
	case "symbol":
		return encodeOutput(method.Name, w.Symbol())
	case "owner":
		return encodeOutput(method.Name, w.Owner())
	case "transferOwnership":
		return nil, w.TransferOwnership(caller, args[0].(common.Address))
	case "renounceOwnership":
		return nil, w.RenounceOwnership(caller)

	case "addAllowedToken":
		return nil, w.AddAllowedToken(caller, args[0].(common.Address))
	case "removeAllowedToken":
		return nil, w.RemoveAllowedToken(caller, args[0].(common.Address))
	case "addAllowedTokens":
		return nil, w.AddAllowedTokens(caller, args[0].([]common.Address))
	case "removeAllowedTokens":
		return nil, w.RemoveAllowedTokens(caller, args[0].([]common.Address))
	case "getTokenAllowance":
		allowed, err := w.TokenAllowance(args[0].(common.Address))
		if err != nil {
			return nil, err
		}
		return encodeOutput(method.Name, allowed)

	case "setUniswapRouterAddress":
		return nil, w.SetUniswapRouterAddress(caller, args[0].(common.Address))
	case "getUniswapRouterAddress":
		return encodeOutput(method.Name, w.UniswapRouterAddress())

	case "mint":
		return nil, w.Mint(caller, args[0].(*big.Int), args[1].([]common.Address), args[2].([]*big.Int))
	case "getDeposit":
		dep, err := w.Deposit(args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return encodeOutput(method.Name, dep.Tokens, dep.Amounts)
	case "ownerOf":
		owner, err := w.OwnerOf(args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return encodeOutput(method.Name, owner)
	case "balanceOf":
		balance, err := w.BalanceOf(args[0].(common.Address))
		if err != nil {
			return nil, err
		}
		return encodeOutput(method.Name, new(big.Int).SetUint64(balance))
	case "approve":
		return nil, w.Approve(caller, args[0].(common.Address), args[1].(*big.Int))
	case "getApproved":
		approved, err := w.GetApproved(args[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		return encodeOutput(method.Name, approved)
	case "setApprovalForAll":
		return nil, w.SetApprovalForAll(caller, args[0].(common.Address), args[1].(bool))
	case "isApprovedForAll":
		approved, err := w.IsApprovedForAll(args[0].(common.Address), args[1].(common.Address))
		if err != nil {
			return nil, err
		}
		return encodeOutput(method.Name, approved)
	case "transferFrom":
		return nil, w.TransferFrom(caller, args[0].(common.Address), args[1].(common.Address), args[2].(*big.Int))
	}
	return nil, ErrExecutionReverted
}
