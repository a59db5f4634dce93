package main

import (
	"fmt"
	"strconv"

	"github.com/MixinNetwork/wrapper/nft"
	"github.com/spf13/cobra"
)

var transferFrom string

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <token-id>",
	Short: "Transfer a claim, the deposit stays bound to the token id",
	Args:  cobra.ExactArgs(2),
	RunE:  runTransfer,
}

var approveCmd = &cobra.Command{
	Use:   "approve <spender> <token-id>",
	Short: "Approve an account to transfer one claim",
	Args:  cobra.ExactArgs(2),
	RunE:  runApprove,
}

var operatorCmd = &cobra.Command{
	Use:   "operator <operator> <true|false>",
	Short: "Approve or revoke an operator for all claims of the caller",
	Args:  cobra.ExactArgs(2),
	RunE:  runOperator,
}

func init() {
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(operatorCmd)

	transferCmd.Flags().StringVar(&transferFrom, "from", "", "current owner (default is the caller)")
}

func runTransfer(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	from := caller
	if transferFrom != "" {
		from, err = parseAddress(transferFrom)
		if err != nil {
			return err
		}
	}
	to, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	id, err := parseTokenID(args[1])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.TransferFrom(caller, from, to, id)
		if err != nil {
			return err
		}
		view := map[string]string{"token_id": id.String(), "from": from.Hex(), "to": to.Hex()}
		return render(view, [][]string{
			{"Token ID", id.String()},
			{"From", from.Hex()},
			{"To", to.Hex()},
		})
	})
}

func runApprove(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	spender, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	id, err := parseTokenID(args[1])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.Approve(caller, spender, id)
		if err != nil {
			return err
		}
		approved, err := w.GetApproved(id)
		if err != nil {
			return err
		}
		view := map[string]string{"token_id": id.String(), "approved": approved.Hex()}
		return render(view, [][]string{
			{"Token ID", id.String()},
			{"Approved", approved.Hex()},
		})
	})
}

func runOperator(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	operator, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(args[1])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		err := w.SetApprovalForAll(caller, operator, approved)
		if err != nil {
			return err
		}
		view := map[string]interface{}{"owner": caller.Hex(), "operator": operator.Hex(), "approved": approved}
		return render(view, [][]string{
			{"Owner", caller.Hex()},
			{"Operator", operator.Hex()},
			{"Approved", fmt.Sprint(approved)},
		})
	})
}
