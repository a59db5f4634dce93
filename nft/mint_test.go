package nft_test

import (
	"math/big"
	"testing"

	mixincrypto "github.com/MixinNetwork/mixin/crypto"
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allowTokens(t *testing.T, w *nft.Wrapper, tokens ...common.Address) {
	require.NoError(t, w.AddAllowedTokens(deployer, tokens))
}

func TestMintInvalidArrayLength(t *testing.T) {
	w, _ := setupWrapper(t)
	allowTokens(t, w, usdc)

	err := w.Mint(alice, big.NewInt(1), []common.Address{usdc}, []*big.Int{big.NewInt(1), big.NewInt(2)})
	var invalid *nft.InvalidArrayLengthError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.TokensLength)
	assert.Equal(t, 2, invalid.AmountsLength)
	assert.Equal(t, "InvalidArrayLength(1, 2)", err.Error())

	_, err = w.OwnerOf(big.NewInt(1))
	assert.ErrorIs(t, err, nft.ErrInvalidTokenID)
}

func TestMintTokenNotAllowed(t *testing.T) {
	w, _ := setupWrapper(t)
	allowTokens(t, w, usdc)

	err := w.Mint(alice, big.NewInt(1), []common.Address{usdc, dai}, []*big.Int{big.NewInt(5), big.NewInt(5)})
	var notAllowed *nft.TokenNotAllowedError
	require.ErrorAs(t, err, &notAllowed)
	assert.Equal(t, dai, notAllowed.Token)

	// the allowance is checked before the amount of the same index
	err = w.Mint(alice, big.NewInt(1), []common.Address{dai}, []*big.Int{big.NewInt(0)})
	require.ErrorAs(t, err, &notAllowed)
}

func TestMintInvalidTokenAmount(t *testing.T) {
	w, _ := setupWrapper(t)
	allowTokens(t, w, usdc, dai)

	err := w.Mint(alice, big.NewInt(1), []common.Address{usdc}, []*big.Int{big.NewInt(0)})
	var invalid *nft.InvalidTokenAmountError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, usdc, invalid.Token)
	assert.Equal(t, 0, invalid.Amount.Sign())

	// the first failing index wins
	err = w.Mint(alice, big.NewInt(1), []common.Address{usdc, carol}, []*big.Int{big.NewInt(-3), big.NewInt(1)})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, big.NewInt(-3), invalid.Amount)

	err = w.Mint(alice, big.NewInt(1), []common.Address{usdc, dai}, []*big.Int{big.NewInt(1), nil})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, dai, invalid.Token)
	assert.Nil(t, invalid.Amount)

	// amounts must fit a uint256, 2^256 + 5 would wrap to 5 on the ABI
	overflow := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(5))
	err = w.Mint(alice, big.NewInt(1), []common.Address{usdc}, []*big.Int{overflow})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, invalid.Amount.Cmp(overflow))
	err = w.Mint(alice, big.NewInt(1), []common.Address{usdc}, []*big.Int{new(big.Int).Lsh(big.NewInt(1), 256)})
	require.ErrorAs(t, err, &invalid)

	_, err = w.Deposit(big.NewInt(1))
	assert.ErrorIs(t, err, nft.ErrInvalidTokenID)

	maxAmount := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	require.NoError(t, w.Mint(alice, big.NewInt(1), []common.Address{usdc}, []*big.Int{maxAmount}))
	dep, err := w.Deposit(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, 0, dep.Amounts[0].Cmp(maxAmount))
}

func TestMint(t *testing.T) {
	w, _ := setupWrapper(t)
	allowTokens(t, w, usdc, dai)

	id := big.NewInt(42)
	amounts := []*big.Int{big.NewInt(1000000), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)}
	require.NoError(t, w.Mint(alice, id, []common.Address{usdc, dai}, amounts))

	// mutating the arguments after the call has no effect on the record
	amounts[0].SetInt64(1)

	owner, err := w.OwnerOf(big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
	balance, err := w.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	dep, err := w.Deposit(id)
	require.NoError(t, err)
	assert.Equal(t, 0, dep.ID.Cmp(id))
	assert.Equal(t, alice, dep.Minter)
	assert.Equal(t, []common.Address{usdc, dai}, dep.Tokens)
	require.Len(t, dep.Amounts, 2)
	assert.Equal(t, "1000000", dep.Amounts[0].String())
	assert.Equal(t, "1000000000000000000", dep.Amounts[1].String())
	assert.NotEqual(t, mixincrypto.Hash{}, dep.Hash)

	evts := allEvents(t, w)
	last := evts[len(evts)-1]
	assert.Equal(t, nft.EventTransfer, last.Name)
	assert.Equal(t, common.Address{}.Hex(), last.Fields["from"])
	assert.Equal(t, alice.Hex(), last.Fields["to"])
	assert.Equal(t, "42", last.Fields["tokenId"])
}

func TestMintDuplicate(t *testing.T) {
	w, _ := setupWrapper(t)
	allowTokens(t, w, usdc, dai)

	require.NoError(t, w.Mint(alice, big.NewInt(7), []common.Address{usdc}, []*big.Int{big.NewInt(10)}))
	err := w.Mint(bob, big.NewInt(7), []common.Address{dai}, []*big.Int{big.NewInt(20)})
	assert.ErrorIs(t, err, nft.ErrTokenAlreadyMinted)

	owner, err := w.OwnerOf(big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
	dep, err := w.Deposit(big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, []common.Address{usdc}, dep.Tokens)
	balance, err := w.BalanceOf(bob)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestMintTokenID(t *testing.T) {
	w, _ := setupWrapper(t)
	allowTokens(t, w, usdc)
	tokens, amounts := []common.Address{usdc}, []*big.Int{big.NewInt(1)}

	assert.ErrorIs(t, w.Mint(alice, nil, tokens, amounts), nft.ErrInvalidTokenID)
	assert.ErrorIs(t, w.Mint(alice, big.NewInt(-1), tokens, amounts), nft.ErrInvalidTokenID)
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
	assert.ErrorIs(t, w.Mint(alice, tooLarge, tokens, amounts), nft.ErrInvalidTokenID)
	assert.ErrorIs(t, w.Mint(common.Address{}, big.NewInt(1), tokens, amounts), nft.ErrMintToZeroAddress)

	maxID := new(big.Int).Sub(tooLarge, big.NewInt(1))
	require.NoError(t, w.Mint(alice, big.NewInt(0), tokens, amounts))
	require.NoError(t, w.Mint(alice, maxID, tokens, amounts))
	owner, err := w.OwnerOf(maxID)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)
	balance, err := w.BalanceOf(alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), balance)
}

func TestMintEmptyBundle(t *testing.T) {
	w, _ := setupWrapper(t)
	require.NoError(t, w.Mint(alice, big.NewInt(3), nil, nil))

	dep, err := w.Deposit(big.NewInt(3))
	require.NoError(t, err)
	assert.Empty(t, dep.Tokens)
	assert.Empty(t, dep.Amounts)
}

func TestMintedQueries(t *testing.T) {
	w, _ := setupWrapper(t)

	_, err := w.OwnerOf(big.NewInt(1))
	assert.ErrorIs(t, err, nft.ErrInvalidTokenID)
	_, err = w.Deposit(big.NewInt(1))
	assert.ErrorIs(t, err, nft.ErrInvalidTokenID)
	_, err = w.GetApproved(big.NewInt(1))
	assert.ErrorIs(t, err, nft.ErrInvalidTokenID)

	balance, err := w.BalanceOf(alice)
	require.NoError(t, err)
	assert.Zero(t, balance)
	_, err = w.BalanceOf(common.Address{})
	var invalid *nft.InvalidAddressError
	assert.ErrorAs(t, err, &invalid)
}
