package main

import (
	"fmt"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/spf13/cobra"
)

var tokensLimit int

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage the token allow-list",
}

var tokensAddCmd = &cobra.Command{
	Use:   "add <token>...",
	Short: "Allow tokens for deposit, owner only",
	Long:  `Add one or more tokens to the allow-list. A batch is applied entirely or not at all.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokensAdd,
}

var tokensRemoveCmd = &cobra.Command{
	Use:   "remove <token>...",
	Short: "Disallow tokens for deposit, owner only",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokensRemove,
}

var tokensCheckCmd = &cobra.Command{
	Use:   "check <token>",
	Short: "Show whether a token is allowed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokensCheck,
}

var tokensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the allowed tokens",
	Args:  cobra.NoArgs,
	RunE:  runTokensList,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.AddCommand(tokensAddCmd)
	tokensCmd.AddCommand(tokensRemoveCmd)
	tokensCmd.AddCommand(tokensCheckCmd)
	tokensCmd.AddCommand(tokensListCmd)

	tokensListCmd.Flags().IntVar(&tokensLimit, "limit", 100, "maximum number of tokens to list")
}

func runTokensAdd(cmd *cobra.Command, args []string) error {
	return updateAllowList(cmd, args, true)
}

func runTokensRemove(cmd *cobra.Command, args []string) error {
	return updateAllowList(cmd, args, false)
}

func updateAllowList(cmd *cobra.Command, args []string, allowed bool) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	tokens, err := parseAddresses(args)
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		if allowed {
			err = w.AddAllowedTokens(caller, tokens)
		} else {
			err = w.RemoveAllowedTokens(caller, tokens)
		}
		if err != nil {
			return err
		}
		rows := make([][]string, len(tokens))
		view := make(map[string]bool, len(tokens))
		for i, t := range tokens {
			rows[i] = []string{t.Hex(), fmt.Sprint(allowed)}
			view[t.Hex()] = allowed
		}
		return renderList(view, []string{"Token", "Allowed"}, rows)
	})
}

func runTokensCheck(cmd *cobra.Command, args []string) error {
	token, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		allowed, err := w.TokenAllowance(token)
		if err != nil {
			return err
		}
		view := map[string]interface{}{"token": token.Hex(), "allowed": allowed}
		return render(view, [][]string{
			{"Token", token.Hex()},
			{"Allowed", fmt.Sprint(allowed)},
		})
	})
}

func runTokensList(cmd *cobra.Command, args []string) error {
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		tokens, err := w.AllowedTokens(tokensLimit)
		if err != nil {
			return err
		}
		view := make([]string, len(tokens))
		rows := make([][]string, len(tokens))
		for i, t := range tokens {
			view[i] = t.Hex()
			rows[i] = []string{t.Hex()}
		}
		return renderList(view, []string{"Token"}, rows)
	})
}
