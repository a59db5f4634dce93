package nft

import (
	"bytes"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const WrapperABI = `[
	{"type": "function", "name": "name", "inputs": [], "outputs": [{"name": "", "type": "string"}], "stateMutability": "view"},
	{"type": "function", "name": "symbol", "inputs": [], "outputs": [{"name": "", "type": "string"}], "stateMutability": "view"},
	{"type": "function", "name": "owner", "inputs": [], "outputs": [{"name": "", "type": "address"}], "stateMutability": "view"},
	{"type": "function", "name": "transferOwnership", "inputs": [{"name": "newOwner", "type": "address"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "renounceOwnership", "inputs": [], "outputs": [], "stateMutability": "nonpayable"},

	{"type": "function", "name": "addAllowedToken", "inputs": [{"name": "token", "type": "address"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "removeAllowedToken", "inputs": [{"name": "token", "type": "address"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "addAllowedTokens", "inputs": [{"name": "tokens", "type": "address[]"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "removeAllowedTokens", "inputs": [{"name": "tokens", "type": "address[]"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "getTokenAllowance", "inputs": [{"name": "token", "type": "address"}], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "view"},

	{"type": "function", "name": "setUniswapRouterAddress", "inputs": [{"name": "router", "type": "address"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "getUniswapRouterAddress", "inputs": [], "outputs": [{"name": "", "type": "address"}], "stateMutability": "view"},

	{"type": "function", "name": "mint", "inputs": [{"name": "tokenId", "type": "uint256"}, {"name": "tokenAddresses", "type": "address[]"}, {"name": "tokenAmounts", "type": "uint256[]"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "getDeposit", "inputs": [{"name": "tokenId", "type": "uint256"}], "outputs": [{"name": "tokenAddresses", "type": "address[]"}, {"name": "tokenAmounts", "type": "uint256[]"}], "stateMutability": "view"},
	{"type": "function", "name": "ownerOf", "inputs": [{"name": "tokenId", "type": "uint256"}], "outputs": [{"name": "", "type": "address"}], "stateMutability": "view"},
	{"type": "function", "name": "balanceOf", "inputs": [{"name": "owner", "type": "address"}], "outputs": [{"name": "", "type": "uint256"}], "stateMutability": "view"},
	{"type": "function", "name": "approve", "inputs": [{"name": "to", "type": "address"}, {"name": "tokenId", "type": "uint256"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "getApproved", "inputs": [{"name": "tokenId", "type": "uint256"}], "outputs": [{"name": "", "type": "address"}], "stateMutability": "view"},
	{"type": "function", "name": "setApprovalForAll", "inputs": [{"name": "operator", "type": "address"}, {"name": "approved", "type": "bool"}], "outputs": [], "stateMutability": "nonpayable"},
	{"type": "function", "name": "isApprovedForAll", "inputs": [{"name": "owner", "type": "address"}, {"name": "operator", "type": "address"}], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "view"},
	{"type": "function", "name": "transferFrom", "inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"}, {"name": "tokenId", "type": "uint256"}], "outputs": [], "stateMutability": "nonpayable"},

	{"type": "error", "name": "InvalidAddress", "inputs": [{"name": "addr", "type": "address"}]},
	{"type": "error", "name": "InvalidArrayLength", "inputs": [{"name": "tokenAddressesLength", "type": "uint256"}, {"name": "tokenAmountsLength", "type": "uint256"}]},
	{"type": "error", "name": "TokenNotAllowed", "inputs": [{"name": "token", "type": "address"}]},
	{"type": "error", "name": "InvalidTokenAmount", "inputs": [{"name": "token", "type": "address"}, {"name": "amount", "type": "uint256"}]},
	{"type": "error", "name": "NotApprovedOrOwner", "inputs": []}
]`

var wrapperABI abi.ABI

func init() {
	var err error
	wrapperABI, err = abi.JSON(bytes.NewReader([]byte(WrapperABI)))
	if err != nil {
		panic(err)
	}
}

// EncodeCall packs the selector and arguments of a wrapper method.
func EncodeCall(method string, args ...interface{}) ([]byte, error) {
	return wrapperABI.Pack(method, args...)
}

// DecodeOutput unpacks the return values of a wrapper method.
func DecodeOutput(method string, data []byte) ([]interface{}, error) {
	return wrapperABI.Unpack(method, data)
}

func encodeOutput(method string, outputs ...interface{}) ([]byte, error) {
	m, ok := wrapperABI.Methods[method]
	if !ok {
		return nil, ErrExecutionReverted
	}
	return m.Outputs.Pack(outputs...)
}
