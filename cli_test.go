package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	cliOwner  = "0x00000000000000000000000000000000000000a1"
	cliOther  = "0x00000000000000000000000000000000000000b1"
	cliRouter = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
	cliUSDC   = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	cliDAI    = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
)

// flag variables outlive a single execution of the root command
func resetFlags() {
	cfgFile, dataDir, callerHex, outputFormat = "", "", "", "table"
	deployName, deploySymbol, deployRouter = "", "", ""
	tokensLimit = 100
	mintDeposits, mintDecimals, showDecimals = nil, 0, 0
	transferFrom = ""
	eventsSince, eventsLimit = "", 100
	conf = nil
}

type cli struct {
	t      *testing.T
	config string
	data   string
}

func newCLI(t *testing.T) *cli {
	dir := t.TempDir()
	t.Setenv("WALLET_PRIVATE_KEY", "")
	t.Setenv("WRAPPER_CONTRACT_ROUTER", "")
	return &cli{
		t:      t,
		config: filepath.Join(dir, "missing.toml"),
		data:   filepath.Join(dir, "data"),
	}
}

func (c *cli) run(caller string, args ...string) (string, error) {
	resetFlags()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", c.config, "--data", c.data, "--caller", caller}, args...))
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func (c *cli) json(caller string, v interface{}, args ...string) {
	out, err := c.run(caller, append(args, "--output", "json")...)
	require.NoError(c.t, err, out)
	require.NoError(c.t, json.Unmarshal([]byte(out), v), out)
}

func TestCLIDeployWithoutRouter(t *testing.T) {
	c := newCLI(t)

	_, err := c.run(cliOwner, "deploy")
	var invalid *nft.InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, common.Address{}, invalid.Address)
	assert.NotEmpty(t, nft.RevertData(err))

	_, err = c.run(cliOwner, "info")
	assert.ErrorIs(t, err, nft.ErrNotDeployed)
}

func TestCLIWorkflow(t *testing.T) {
	c := newCLI(t)

	var contract contractView
	c.json(cliOwner, &contract, "deploy", "--router", cliRouter, "--symbol", "BNDL")
	assert.Equal(t, "Wrapper", contract.Name)
	assert.Equal(t, "BNDL", contract.Symbol)
	assert.Equal(t, common.HexToAddress(cliOwner).Hex(), contract.Owner)
	assert.Equal(t, common.HexToAddress(cliRouter).Hex(), contract.Router)

	out, err := c.run(cliOwner, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "BNDL")
	assert.Contains(t, out, common.HexToAddress(cliRouter).Hex())

	_, err = c.run(cliOther, "tokens", "add", cliUSDC)
	var unauthorized *nft.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	_, err = c.run(cliOwner, "tokens", "add", cliUSDC, cliDAI)
	require.NoError(t, err)

	out, err = c.run(cliOwner, "tokens", "check", cliUSDC, "--output", "yaml")
	require.NoError(t, err)
	var check map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &check), out)
	assert.Equal(t, true, check["allowed"])

	var listed []string
	c.json(cliOwner, &listed, "tokens", "list")
	assert.ElementsMatch(t, []string{
		common.HexToAddress(cliUSDC).Hex(),
		common.HexToAddress(cliDAI).Hex(),
	}, listed)

	var dep depositView
	c.json(cliOther, &dep, "mint", "1", "--deposit", cliUSDC+"=1.5", "--decimals", "6")
	assert.Equal(t, "1", dep.TokenID)
	assert.Equal(t, common.HexToAddress(cliOther).Hex(), dep.Minter)
	assert.Equal(t, "1.5", dep.Amounts[common.HexToAddress(cliUSDC).Hex()])

	_, err = c.run(cliOther, "mint", "2", "--deposit", cliRouter+"=1")
	var notAllowed *nft.TokenNotAllowedError
	require.ErrorAs(t, err, &notAllowed)

	var owner map[string]string
	c.json(cliOwner, &owner, "owner-of", "1")
	assert.Equal(t, common.HexToAddress(cliOther).Hex(), owner["owner"])

	_, err = c.run(cliOther, "transfer", cliOwner, "1")
	require.NoError(t, err)
	c.json(cliOwner, &owner, "owner-of", "1")
	assert.Equal(t, common.HexToAddress(cliOwner).Hex(), owner["owner"])

	var evts []eventView
	c.json(cliOwner, &evts, "events")
	names := make([]string, len(evts))
	for i, e := range evts {
		names[i] = e.Name
	}
	assert.Equal(t, []string{
		nft.EventOwnershipTransferred,
		nft.EventAllowedTokenAdded,
		nft.EventAllowedTokenAdded,
		nft.EventTransfer,
		nft.EventTransfer,
	}, names)
}

func TestCLICall(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(cliOwner, "deploy", "--router", cliRouter)
	require.NoError(t, err)

	input, err := nft.EncodeCall("symbol")
	require.NoError(t, err)
	var ret map[string]string
	c.json(cliOwner, &ret, "call", "0x"+common.Bytes2Hex(input))
	require.True(t, strings.HasPrefix(ret["return"], "0x"))

	res, err := nft.DecodeOutput("symbol", common.FromHex(ret["return"]))
	require.NoError(t, err)
	assert.Equal(t, "WRAP", res[0])
}

func TestCLIUnknownOutput(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(cliOwner, "deploy", "--router", cliRouter, "--output", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
