package main

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	mintDeposits []string
	mintDecimals int32
	showDecimals int32
)

var mintCmd = &cobra.Command{
	Use:   "mint <token-id>",
	Short: "Deposit a bundle of allowed tokens and mint its claim",
	Long: `Mint assigns the token id to the caller and records the deposited bundle.
Each --deposit is token=amount, amounts are scaled by --decimals.`,
	Example: `  wrapper mint 1 --deposit 0xA0b8...eB48=10.5 --deposit 0xdAC1...1ec7=3 --decimals 6`,
	Args:    cobra.ExactArgs(1),
	RunE:    runMint,
}

var depositCmd = &cobra.Command{
	Use:   "deposit <token-id>",
	Short: "Show the bundle deposited for a token id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeposit,
}

var ownerOfCmd = &cobra.Command{
	Use:   "owner-of <token-id>",
	Short: "Show the owner of a token id",
	Args:  cobra.ExactArgs(1),
	RunE:  runOwnerOf,
}

var balanceCmd = &cobra.Command{
	Use:   "balance [owner]",
	Short: "Show how many claims an account holds",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(mintCmd)
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(ownerOfCmd)
	rootCmd.AddCommand(balanceCmd)

	mintCmd.Flags().StringArrayVar(&mintDeposits, "deposit", nil, "deposited token and amount as token=amount, repeatable")
	mintCmd.Flags().Int32Var(&mintDecimals, "decimals", 0, "decimals applied to every deposited amount")
	depositCmd.Flags().Int32Var(&showDecimals, "decimals", 0, "decimals used to format the deposited amounts")
}

type depositView struct {
	TokenID   string            `json:"token_id" yaml:"token_id"`
	Minter    string            `json:"minter" yaml:"minter"`
	Hash      string            `json:"hash" yaml:"hash"`
	Amounts   map[string]string `json:"amounts" yaml:"amounts"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
}

func runMint(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	id, err := parseTokenID(args[0])
	if err != nil {
		return err
	}
	tokens, amounts, err := parseDeposits(mintDeposits, mintDecimals)
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.Mint(caller, id, tokens, amounts)
		if err != nil {
			return err
		}
		dep, err := w.Deposit(id)
		if err != nil {
			return err
		}
		return renderDeposit(dep, mintDecimals)
	})
}

func runDeposit(cmd *cobra.Command, args []string) error {
	id, err := parseTokenID(args[0])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		dep, err := w.Deposit(id)
		if err != nil {
			return err
		}
		return renderDeposit(dep, showDecimals)
	})
}

func runOwnerOf(cmd *cobra.Command, args []string) error {
	id, err := parseTokenID(args[0])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		owner, err := w.OwnerOf(id)
		if err != nil {
			return err
		}
		view := map[string]string{"token_id": id.String(), "owner": owner.Hex()}
		return render(view, [][]string{
			{"Token ID", id.String()},
			{"Owner", owner.Hex()},
		})
	})
}

func runBalance(cmd *cobra.Command, args []string) error {
	var owner common.Address
	var err error
	if len(args) > 0 {
		owner, err = parseAddress(args[0])
	} else {
		owner, err = currentCaller()
	}
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		balance, err := w.BalanceOf(owner)
		if err != nil {
			return err
		}
		view := map[string]interface{}{"owner": owner.Hex(), "balance": balance}
		return render(view, [][]string{
			{"Owner", owner.Hex()},
			{"Balance", fmt.Sprint(balance)},
		})
	})
}

// the order of the flags is kept, duplicates are passed through as given
func parseDeposits(pairs []string, decimals int32) ([]common.Address, []*big.Int, error) {
	tokens := make([]common.Address, len(pairs))
	amounts := make([]*big.Int, len(pairs))
	for i, p := range pairs {
		token, amount, ok := strings.Cut(p, "=")
		if !ok {
			return nil, nil, fmt.Errorf("invalid deposit %q, want token=amount", p)
		}
		addr, err := parseAddress(token)
		if err != nil {
			return nil, nil, err
		}
		units, err := nft.ParseAmount(amount, decimals)
		if err != nil {
			return nil, nil, err
		}
		tokens[i] = addr
		amounts[i] = units
	}
	return tokens, amounts, nil
}

func renderDeposit(dep *nft.Deposit, decimals int32) error {
	v := depositView{
		TokenID:   dep.ID.String(),
		Minter:    dep.Minter.Hex(),
		Hash:      dep.Hash.String(),
		Amounts:   make(map[string]string, len(dep.Tokens)),
		CreatedAt: dep.CreatedAt,
	}
	rows := [][]string{
		{"Token ID", v.TokenID},
		{"Minter", v.Minter},
		{"Hash", v.Hash},
	}
	for i, t := range dep.Tokens {
		amount := nft.FormatAmount(dep.Amounts[i], decimals)
		v.Amounts[t.Hex()] = amount
		rows = append(rows, []string{t.Hex(), amount})
	}
	rows = append(rows, []string{"Created At", v.CreatedAt.Format(time.RFC3339)})
	return render(v, rows)
}
