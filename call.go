package main

import (
	"github.com/MixinNetwork/wrapper/nft"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <calldata>",
	Short: "Execute ABI encoded calldata against the wrapper",
	Long:  `Call runs hex encoded calldata as the caller and prints the ABI encoded return data.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	caller, err := currentCaller()
	if err != nil {
		return err
	}
	input, err := hexutil.Decode(args[0])
	if err != nil {
		return err
	}
	return withWrapper(cmd, func(w *nft.Wrapper) error {
		out, err := w.Run(caller, input)
		if err != nil {
			return err
		}
		ret := hexutil.Encode(out)
		return render(map[string]string{"return": ret}, [][]string{{"Return", ret}})
	})
}
