package nft_test

import (
	"math/big"
	"testing"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens(n int) []common.Address {
	tokens := make([]common.Address, n)
	for i := range tokens {
		tokens[i] = common.BigToAddress(big.NewInt(int64(0x1000 + i)))
	}
	return tokens
}

func TestTokenAllowanceDefault(t *testing.T) {
	w, _ := setupWrapper(t)
	for _, token := range []common.Address{usdc, dai, {}} {
		allowed, err := w.TokenAllowance(token)
		require.NoError(t, err)
		assert.False(t, allowed)
	}
}

func TestAllowedTokenUnauthorized(t *testing.T) {
	w, _ := setupWrapper(t)
	var unauthorized *nft.UnauthorizedError

	require.ErrorAs(t, w.AddAllowedToken(alice, usdc), &unauthorized)
	assert.Equal(t, alice, unauthorized.Caller)
	require.ErrorAs(t, w.AddAllowedTokens(alice, []common.Address{usdc, dai}), &unauthorized)

	require.NoError(t, w.AddAllowedToken(deployer, usdc))
	require.ErrorAs(t, w.RemoveAllowedToken(alice, usdc), &unauthorized)
	require.ErrorAs(t, w.RemoveAllowedTokens(alice, []common.Address{usdc}), &unauthorized)

	allowed, err := w.TokenAllowance(usdc)
	require.NoError(t, err)
	assert.True(t, allowed)
	allowed, err = w.TokenAllowance(dai)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAddRemoveAllowedToken(t *testing.T) {
	w, _ := setupWrapper(t)

	var invalid *nft.InvalidAddressError
	require.ErrorAs(t, w.AddAllowedToken(deployer, common.Address{}), &invalid)

	require.NoError(t, w.AddAllowedToken(deployer, usdc))
	// adding twice keeps it allowed and still emits
	require.NoError(t, w.AddAllowedToken(deployer, usdc))
	allowed, err := w.TokenAllowance(usdc)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, w.RemoveAllowedToken(deployer, usdc))
	allowed, err = w.TokenAllowance(usdc)
	require.NoError(t, err)
	assert.False(t, allowed)

	// removing a token that is not allowed succeeds
	require.NoError(t, w.RemoveAllowedToken(deployer, dai))

	evts := allEvents(t, w)
	require.Len(t, evts, 5)
	assert.Equal(t, nft.EventAllowedTokenAdded, evts[1].Name)
	assert.Equal(t, nft.EventAllowedTokenAdded, evts[2].Name)
	assert.Equal(t, nft.EventAllowedTokenRemoved, evts[3].Name)
	assert.Equal(t, usdc.Hex(), evts[3].Fields["token"])
	assert.Equal(t, dai.Hex(), evts[4].Fields["token"])
}

func TestAllowedTokensBatch(t *testing.T) {
	w, _ := setupWrapper(t)
	tokens := testTokens(25)

	require.NoError(t, w.AddAllowedTokens(deployer, tokens))
	for _, token := range tokens {
		allowed, err := w.TokenAllowance(token)
		require.NoError(t, err)
		assert.True(t, allowed, token.Hex())
	}
	listed, err := w.AllowedTokens(100)
	require.NoError(t, err)
	assert.ElementsMatch(t, tokens, listed)
	listed, err = w.AllowedTokens(10)
	require.NoError(t, err)
	assert.Len(t, listed, 10)
	assert.Len(t, allEvents(t, w), 26)

	require.NoError(t, w.RemoveAllowedTokens(deployer, tokens[:20]))
	for i, token := range tokens {
		allowed, err := w.TokenAllowance(token)
		require.NoError(t, err)
		assert.Equal(t, i >= 20, allowed, token.Hex())
	}
	listed, err = w.AllowedTokens(100)
	require.NoError(t, err)
	assert.ElementsMatch(t, tokens[20:], listed)

	// empty batches are accepted and change nothing
	require.NoError(t, w.AddAllowedTokens(deployer, nil))
	require.NoError(t, w.RemoveAllowedTokens(deployer, []common.Address{}))
	assert.Len(t, allEvents(t, w), 46)
}

func TestAllowedTokensBatchAtomic(t *testing.T) {
	w, _ := setupWrapper(t)
	tokens := testTokens(10)
	tokens[6] = common.Address{}

	err := w.AddAllowedTokens(deployer, tokens)
	var invalid *nft.InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, common.Address{}, invalid.Address)

	for _, token := range tokens {
		allowed, err := w.TokenAllowance(token)
		require.NoError(t, err)
		assert.False(t, allowed, token.Hex())
	}
	listed, err := w.AllowedTokens(100)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Len(t, allEvents(t, w), 1)
}
