package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/wrapper/config"
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/MixinNetwork/wrapper/store"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	dataDir      string
	callerHex    string
	outputFormat string

	conf *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:           "wrapper",
	Short:         "Allow-listed token bundle wrapper",
	Long:          `wrapper keeps an allow-list of tokens and mints one ERC721 claim per deposited bundle of allowed tokens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Setup(expandHome(cfgFile))
		if err != nil {
			return err
		}
		if dataDir != "" {
			c.Store.Dir = dataDir
		}
		c.Store.Dir = expandHome(c.Store.Dir)
		logger.SetLevel(c.Logger.Level)
		conf = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "~/.mixin/wrapper/config.toml", "configuration file path")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "database directory path (default from config)")
	rootCmd.PersistentFlags().StringVar(&callerHex, "caller", "", "caller address (default from the configured account)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "table", "output format: table, json or yaml")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if data := nft.RevertData(err); len(data) > 0 {
			fmt.Fprintf(os.Stderr, "Revert: 0x%s\n", hex.EncodeToString(data))
		}
		stop()
		os.Exit(1)
	}
}

func withStore(cmd *cobra.Command, fn func(ctx context.Context, db *store.BadgerStore) error) error {
	ctx := cmd.Context()
	db, err := store.OpenBadger(ctx, conf.Store.Dir)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db)
}

func withWrapper(cmd *cobra.Command, fn func(w *nft.Wrapper) error) error {
	return withStore(cmd, func(ctx context.Context, db *store.BadgerStore) error {
		w, err := nft.Load(ctx, db)
		if err != nil {
			return err
		}
		return fn(w)
	})
}

func currentCaller() (common.Address, error) {
	if callerHex != "" {
		return parseAddress(callerHex)
	}
	return conf.Caller()
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		usr, _ := user.Current()
		p = filepath.Join(usr.HomeDir, p[2:])
	}
	return p
}
