package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[store]
dir = "/tmp/wrapper"

[logger]
level = 3

[account]
address = "0x00000000000000000000000000000000000000a1"

[contract]
name = "Bundle"
symbol = "BNDL"
router = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
`

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetupDefaults(t *testing.T) {
	conf, err := Setup(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "~/.mixin/wrapper/data", conf.Store.Dir)
	assert.Equal(t, 2, conf.Logger.Level)
	assert.Equal(t, "Wrapper", conf.Contract.Name)
	assert.Equal(t, "WRAP", conf.Contract.Symbol)
	assert.Empty(t, conf.Contract.Router)

	_, err = conf.Caller()
	assert.Error(t, err)
}

func TestSetupFile(t *testing.T) {
	conf, err := Setup(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/wrapper", conf.Store.Dir)
	assert.Equal(t, 3, conf.Logger.Level)
	assert.Equal(t, "Bundle", conf.Contract.Name)
	assert.Equal(t, "BNDL", conf.Contract.Symbol)
	assert.Equal(t, "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D", conf.Contract.Router)

	caller, err := conf.Caller()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000a1"), caller)
}

func TestSetupEnvOverride(t *testing.T) {
	t.Setenv("WRAPPER_CONTRACT_SYMBOL", "ENV")
	t.Setenv("WRAPPER_STORE_DIR", "/var/lib/wrapper")

	conf, err := Setup(writeConfig(t, testConfig))
	require.NoError(t, err)
	assert.Equal(t, "ENV", conf.Contract.Symbol)
	assert.Equal(t, "/var/lib/wrapper", conf.Store.Dir)
	assert.Equal(t, "Bundle", conf.Contract.Name)
}

func TestSetupPrivateKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	t.Setenv("WALLET_PRIVATE_KEY", "0x"+common.Bytes2Hex(crypto.FromECDSA(key)))

	conf, err := Setup(writeConfig(t, testConfig))
	require.NoError(t, err)
	caller, err := conf.Caller()
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), caller)

	t.Setenv("WALLET_PRIVATE_KEY", "not a key")
	conf, err = Setup(writeConfig(t, testConfig))
	require.NoError(t, err)
	_, err = conf.Caller()
	assert.Error(t, err)
}

func TestSetupInvalid(t *testing.T) {
	_, err := Setup(writeConfig(t, "[contract]\nrouter = \"0x1234\"\n"))
	assert.Error(t, err)
	_, err = Setup(writeConfig(t, "[account]\naddress = \"nope\"\n"))
	assert.Error(t, err)
	_, err = Setup(writeConfig(t, "not toml ["))
	assert.Error(t, err)
}
