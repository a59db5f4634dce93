package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// render prints v as json or yaml, or the rows as a two column table.
func render(v interface{}, rows [][]string) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(rootCmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(rootCmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(v)
	case "table", "":
		table := tablewriter.NewWriter(rootCmd.OutOrStdout())
		table.Header("Field", "Value")
		for _, r := range rows {
			table.Append([]string{r[0], r[1]})
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func renderList(v interface{}, header []string, rows [][]string) error {
	if outputFormat != "table" && outputFormat != "" {
		return render(v, nil)
	}
	cols := make([]interface{}, len(header))
	for i, h := range header {
		cols[i] = h
	}
	table := tablewriter.NewWriter(rootCmd.OutOrStdout())
	table.Header(cols...)
	for _, r := range rows {
		table.Append(r)
	}
	return table.Render()
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

func parseAddresses(args []string) ([]common.Address, error) {
	addrs := make([]common.Address, len(args))
	for i, a := range args {
		addr, err := parseAddress(a)
		if err != nil {
			return nil, err
		}
		addrs[i] = addr
	}
	return addrs, nil
}

// token ids are decimal, or hexadecimal with a 0x prefix
func parseTokenID(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		s, base = s[2:], 16
	}
	id, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid token id %q", s)
	}
	return id, nil
}
