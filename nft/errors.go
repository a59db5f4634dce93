package nft

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrExecutionReverted = errors.New("execution reverted")
	ErrAlreadyDeployed   = errors.New("wrapper already deployed")
	ErrNotDeployed       = errors.New("wrapper not deployed")

	ErrInvalidTokenID             = errors.New("ERC721: invalid token ID")
	ErrTokenAlreadyMinted         = errors.New("ERC721: token already minted")
	ErrMintToZeroAddress          = errors.New("ERC721: mint to the zero address")
	ErrTransferFromIncorrectOwner = errors.New("ERC721: transfer from incorrect owner")
	ErrTransferToZeroAddress      = errors.New("ERC721: transfer to the zero address")
	ErrApprovalToCurrentOwner     = errors.New("ERC721: approval to current owner")
	ErrApproveToCaller            = errors.New("ERC721: approve to caller")
)

const ownableNotOwner = "Ownable: caller is not the owner"

// the selector of the builtin Error(string) revert reason
var revertReasonSelector = crypto.Keccak256([]byte("Error(string)"))[:4]

type UnauthorizedError struct {
	Caller common.Address
}

func (e *UnauthorizedError) Error() string {
	return ownableNotOwner
}

type InvalidAddressError struct {
	Address common.Address
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("InvalidAddress(%s)", e.Address.Hex())
}

type InvalidArrayLengthError struct {
	TokensLength  int
	AmountsLength int
}

func (e *InvalidArrayLengthError) Error() string {
	return fmt.Sprintf("InvalidArrayLength(%d, %d)", e.TokensLength, e.AmountsLength)
}

type TokenNotAllowedError struct {
	Token common.Address
}

func (e *TokenNotAllowedError) Error() string {
	return fmt.Sprintf("TokenNotAllowed(%s)", e.Token.Hex())
}

type InvalidTokenAmountError struct {
	Token  common.Address
	Amount *big.Int
}

func (e *InvalidTokenAmountError) Error() string {
	return fmt.Sprintf("InvalidTokenAmount(%s, %s)", e.Token.Hex(), amountString(e.Amount))
}

// NotApprovedOrOwnerError carries the caller and identifier for diagnostics,
// the revert data itself has no arguments.
type NotApprovedOrOwnerError struct {
	Caller common.Address
	ID     *big.Int
}

func (e *NotApprovedOrOwnerError) Error() string {
	return "NotApprovedOrOwner()"
}

// RevertData encodes err as the revert payload an EVM caller would observe.
func RevertData(err error) []byte {
	var (
		unauthorized  *UnauthorizedError
		invalidAddr   *InvalidAddressError
		invalidLength *InvalidArrayLengthError
		notAllowed    *TokenNotAllowedError
		invalidAmount *InvalidTokenAmountError
		notApproved   *NotApprovedOrOwnerError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &unauthorized):
		return encodeRevertReason(ownableNotOwner)
	case errors.As(err, &invalidAddr):
		return encodeCustomError("InvalidAddress", invalidAddr.Address)
	case errors.As(err, &invalidLength):
		return encodeCustomError("InvalidArrayLength",
			big.NewInt(int64(invalidLength.TokensLength)),
			big.NewInt(int64(invalidLength.AmountsLength)))
	case errors.As(err, &notAllowed):
		return encodeCustomError("TokenNotAllowed", notAllowed.Token)
	case errors.As(err, &invalidAmount):
		amount := invalidAmount.Amount
		if amount == nil || amount.Sign() < 0 || amount.BitLen() > 256 {
			amount = new(big.Int)
		}
		return encodeCustomError("InvalidTokenAmount", invalidAmount.Token, amount)
	case errors.As(err, &notApproved):
		return encodeCustomError("NotApprovedOrOwner")
	case errors.Is(err, ErrExecutionReverted):
		return nil
	}
	return encodeRevertReason(err.Error())
}

// DecodeRevert rebuilds the typed error from revert data returned by Run.
// The caller of an Ownable failure is not part of the data, the returned
// UnauthorizedError has a zero Caller.
func DecodeRevert(data []byte) error {
	if len(data) < 4 {
		return ErrExecutionReverted
	}
	if bytes4(data) == bytes4(revertReasonSelector) {
		reason, err := abi.UnpackRevert(data)
		if err != nil {
			return ErrExecutionReverted
		}
		return reasonError(reason)
	}

	e, err := wrapperABI.ErrorByID(bytes4(data))
	if err != nil {
		return ErrExecutionReverted
	}
	args, err := e.Inputs.Unpack(data[4:])
	if err != nil {
		return ErrExecutionReverted
	}
	switch e.Name {
	case "InvalidAddress":
		return &InvalidAddressError{Address: args[0].(common.Address)}
	case "InvalidArrayLength":
		tokens, amounts := args[0].(*big.Int), args[1].(*big.Int)
		if !lengthFits(tokens) || !lengthFits(amounts) {
			return ErrExecutionReverted
		}
		return &InvalidArrayLengthError{
			TokensLength:  int(tokens.Int64()),
			AmountsLength: int(amounts.Int64()),
		}
	case "TokenNotAllowed":
		return &TokenNotAllowedError{Token: args[0].(common.Address)}
	case "InvalidTokenAmount":
		return &InvalidTokenAmountError{Token: args[0].(common.Address), Amount: args[1].(*big.Int)}
	case "NotApprovedOrOwner":
		return &NotApprovedOrOwnerError{}
	}
	return ErrExecutionReverted
}

func reasonError(reason string) error {
	if reason == ownableNotOwner {
		return &UnauthorizedError{}
	}
	for _, err := range []error{
		ErrInvalidTokenID,
		ErrTokenAlreadyMinted,
		ErrMintToZeroAddress,
		ErrTransferFromIncorrectOwner,
		ErrTransferToZeroAddress,
		ErrApprovalToCurrentOwner,
		ErrApproveToCaller,
		ErrNotDeployed,
	} {
		if err.Error() == reason {
			return err
		}
	}
	return errors.New(reason)
}

func encodeCustomError(name string, args ...interface{}) []byte {
	e, ok := wrapperABI.Errors[name]
	if !ok {
		panic(name)
	}
	data, err := e.Inputs.Pack(args...)
	if err != nil {
		panic(err)
	}
	return append(common.CopyBytes(e.ID[:4]), data...)
}

func encodeRevertReason(reason string) []byte {
	typ, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	data, err := abi.Arguments{{Type: typ}}.Pack(reason)
	if err != nil {
		panic(err)
	}
	return append(common.CopyBytes(revertReasonSelector), data...)
}

// lengths come from foreign data and must fit an int
func lengthFits(n *big.Int) bool {
	return n.IsInt64() && n.Int64() <= int64(math.MaxInt)
}

func bytes4(b []byte) [4]byte {
	var sig [4]byte
	copy(sig[:], b)
	return sig
}

func amountString(amount *big.Int) string {
	if amount == nil {
		return "<nil>"
	}
	return amount.String()
}
