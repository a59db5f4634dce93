package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/viper"
)

type Configuration struct {
	Store struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"store"`
	Logger struct {
		Level int `mapstructure:"level"`
	} `mapstructure:"logger"`
	Account struct {
		Address    string `mapstructure:"address"`
		PrivateKey string `mapstructure:"private_key"`
	} `mapstructure:"account"`
	Contract struct {
		Name   string `mapstructure:"name"`
		Symbol string `mapstructure:"symbol"`
		Router string `mapstructure:"router"`
	} `mapstructure:"contract"`
}

// Setup reads the TOML file at path, a missing file leaves the defaults.
// Every key can be overridden by WRAPPER_SECTION_KEY environment variables.
func Setup(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("WRAPPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("store.dir", "~/.mixin/wrapper/data")
	v.SetDefault("logger.level", 2)
	v.SetDefault("account.address", "")
	v.SetDefault("account.private_key", "")
	v.SetDefault("contract.name", "Wrapper")
	v.SetDefault("contract.symbol", "WRAP")
	v.SetDefault("contract.router", "")
	err := v.BindEnv("account.private_key", "WRAPPER_ACCOUNT_PRIVATE_KEY", "WALLET_PRIVATE_KEY")
	if err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		var notFound viper.ConfigFileNotFoundError
		if err != nil && !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var conf Configuration
	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, err
	}
	return &conf, conf.validate()
}

// Caller is the account operations are sent from, derived from the private
// key when one is configured.
func (c *Configuration) Caller() (common.Address, error) {
	if pk := c.Account.PrivateKey; pk != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(pk, "0x"))
		if err != nil {
			return common.Address{}, fmt.Errorf("invalid account private key: %w", err)
		}
		return crypto.PubkeyToAddress(key.PublicKey), nil
	}
	if !common.IsHexAddress(c.Account.Address) {
		return common.Address{}, fmt.Errorf("invalid account address %q", c.Account.Address)
	}
	return common.HexToAddress(c.Account.Address), nil
}

func (c *Configuration) validate() error {
	if r := c.Contract.Router; r != "" && !common.IsHexAddress(r) {
		return fmt.Errorf("invalid contract router %q", r)
	}
	if a := c.Account.Address; a != "" && !common.IsHexAddress(a) {
		return fmt.Errorf("invalid account address %q", a)
	}
	return nil
}
