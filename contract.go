package main

import (
	"context"
	"time"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/MixinNetwork/wrapper/store"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	deployName   string
	deploySymbol string
	deployRouter string
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the wrapper into the data directory",
	Long:  `Deploy records the contract configuration with the caller as owner. Name, symbol and router default to the [contract] section of the configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runDeploy,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the deployed contract",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

var routerCmd = &cobra.Command{
	Use:   "router",
	Short: "Read or update the swap router address",
}

var routerGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the swap router address",
	Args:  cobra.NoArgs,
	RunE:  runRouterGet,
}

var routerSetCmd = &cobra.Command{
	Use:   "set <router>",
	Short: "Replace the swap router address, owner only",
	Args:  cobra.ExactArgs(1),
	RunE:  runRouterSet,
}

var ownershipCmd = &cobra.Command{
	Use:   "ownership",
	Short: "Transfer or renounce the contract ownership",
}

var ownershipTransferCmd = &cobra.Command{
	Use:   "transfer <new-owner>",
	Short: "Transfer the ownership to another account",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnershipTransfer,
}

var ownershipRenounceCmd = &cobra.Command{
	Use:   "renounce",
	Short: "Leave the contract without an owner",
	Args:  cobra.NoArgs,
	RunE:  runOwnershipRenounce,
}

func init() {
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(routerCmd)
	routerCmd.AddCommand(routerGetCmd)
	routerCmd.AddCommand(routerSetCmd)
	rootCmd.AddCommand(ownershipCmd)
	ownershipCmd.AddCommand(ownershipTransferCmd)
	ownershipCmd.AddCommand(ownershipRenounceCmd)

	deployCmd.Flags().StringVar(&deployName, "name", "", "collection name")
	deployCmd.Flags().StringVar(&deploySymbol, "symbol", "", "collection symbol")
	deployCmd.Flags().StringVar(&deployRouter, "router", "", "swap router address")
}

type contractView struct {
	Address   string    `json:"address" yaml:"address"`
	Name      string    `json:"name" yaml:"name"`
	Symbol    string    `json:"symbol" yaml:"symbol"`
	Owner     string    `json:"owner" yaml:"owner"`
	Router    string    `json:"router" yaml:"router"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func runDeploy(cmd *cobra.Command, args []string) error {
	deployer, err := currentCaller()
	if err != nil {
		return err
	}
	name, symbol := conf.Contract.Name, conf.Contract.Symbol
	if deployName != "" {
		name = deployName
	}
	if deploySymbol != "" {
		symbol = deploySymbol
	}
	routerHex := conf.Contract.Router
	if deployRouter != "" {
		routerHex = deployRouter
	}
	var router common.Address
	if routerHex != "" {
		router, err = parseAddress(routerHex)
		if err != nil {
			return err
		}
	}

	return withStore(cmd, func(ctx context.Context, db *store.BadgerStore) error {
		w, err := nft.Deploy(ctx, db, deployer, name, symbol, router)
		if err != nil {
			return err
		}
		return renderContract(w.Contract())
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		return renderContract(w.Contract())
	})
}

func runRouterGet(cmd *cobra.Command, args []string) error {
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		router := w.UniswapRouterAddress().Hex()
		return render(map[string]string{"router": router}, [][]string{{"Router", router}})
	})
}

func runRouterSet(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	router, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.SetUniswapRouterAddress(caller, router)
		if err != nil {
			return err
		}
		return renderContract(w.Contract())
	})
}

func runOwnershipTransfer(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	owner, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.TransferOwnership(caller, owner)
		if err != nil {
			return err
		}
		return renderContract(w.Contract())
	})
}

func runOwnershipRenounce(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.RenounceOwnership(caller)
		if err != nil {
			return err
		}
		return renderContract(w.Contract())
	})
}

func renderContract(c nft.Contract) error {
	v := contractView{
		Address:   c.Address.Hex(),
		Name:      c.Name,
		Symbol:    c.Symbol,
		Owner:     c.Owner.Hex(),
		Router:    c.Router.Hex(),
		CreatedAt: c.CreatedAt,
	}
	return render(v, [][]string{
		{"Address", v.Address},
		{"Name", v.Name},
		{"Symbol", v.Symbol},
		{"Owner", v.Owner},
		{"Router", v.Router},
		{"Created At", v.CreatedAt.Format(time.RFC3339)},
	})
}
