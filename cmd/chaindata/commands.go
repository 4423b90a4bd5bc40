package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/openweb3-io/chaindata/cmd/chaindata/setup"
	"github.com/openweb3-io/chaindata/pagination"
	"github.com/openweb3-io/chaindata/types"
)

func requireChain(cmd *cobra.Command) (types.Chain, error) {
	chain := setup.UnwrapChain(cmd.Context())
	if chain == "" {
		return "", fmt.Errorf("--chain required")
	}
	return chain, nil
}

func printJson(a any) {
	bz, _ := json.MarshalIndent(a, "", "  ")
	fmt.Println(string(bz))
}

func CmdTxs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txs <address>",
		Short: "List an account's classified transactions, page by page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			chain, err := requireChain(cmd)
			if err != nil {
				return err
			}
			address := types.Address(args[0])

			pageSize, _ := cmd.Flags().GetInt("page-size")
			sort, _ := cmd.Flags().GetString("sort")
			cursor, _ := cmd.Flags().GetString("cursor")
			pages, _ := cmd.Flags().GetInt("pages")
			all, _ := cmd.Flags().GetBool("all")

			client, err := f.NewClient(cmd.Context(), chain)
			if err != nil {
				return err
			}

			var page *pagination.TransactionsPage[types.Transaction]
			if cursor != "" {
				page, err = client.TransactionsFromCursor(cmd.Context(), chain, address, cursor)
			} else {
				var options []pagination.Option
				if pageSize > 0 {
					options = append(options, pagination.WithPageSize(pageSize))
				}
				if sort != "" {
					options = append(options, pagination.WithSort(pagination.SortOrder(sort)))
				}
				page, err = client.Transactions(cmd.Context(), chain, address, options...)
			}
			if err != nil {
				return fmt.Errorf("could not fetch transactions: %v", err)
			}

			if all {
				iter := page.Iter()
				for iter.Next(cmd.Context()) {
					printJson(iter.Item())
				}
				return iter.Err()
			}

			for i := 0; ; i++ {
				for _, tx := range page.Transactions() {
					printJson(tx)
				}
				if pages > 0 && i+1 >= pages {
					break
				}
				ok, err := page.Next(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					break
				}
			}

			info := page.CursorInfo()
			bz, _ := yaml.Marshal(info)
			fmt.Print(string(bz))
			return nil
		},
	}
	cmd.Flags().Int("page-size", 0, "Transactions per page.")
	cmd.Flags().String("sort", "", "Sort order (asc or desc).")
	cmd.Flags().String("cursor", "", "Resume from a cursor token.")
	cmd.Flags().Int("pages", 1, "Number of pages to print (0 = until exhausted).")
	cmd.Flags().Bool("all", false, "Stream every transaction instead of printing pages.")
	return cmd
}

func CmdTx() *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Show one classified transaction.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			chain, err := requireChain(cmd)
			if err != nil {
				return err
			}
			client, err := f.NewClient(cmd.Context(), chain)
			if err != nil {
				return err
			}
			tx, err := client.Transaction(cmd.Context(), chain, types.TxHash(args[0]))
			if err != nil {
				return fmt.Errorf("could not fetch transaction: %v", err)
			}
			printJson(tx)
			return nil
		},
	}
}

func CmdBalances() *cobra.Command {
	return &cobra.Command{
		Use:   "balances <address>",
		Short: "List an account's token balances.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			chain, err := requireChain(cmd)
			if err != nil {
				return err
			}
			client, err := f.NewClient(cmd.Context(), chain)
			if err != nil {
				return err
			}
			sheet, err := client.Balances(cmd.Context(), chain, types.Address(args[0]))
			if err != nil {
				return fmt.Errorf("could not fetch balances: %v", err)
			}
			printJson(sheet.List())
			return nil
		},
	}
}

func CmdPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Show the current price of a chain's native asset or a token.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := setup.UnwrapFactory(cmd.Context())
			chain, err := requireChain(cmd)
			if err != nil {
				return err
			}
			contract, _ := cmd.Flags().GetString("contract")

			api, err := f.NewApiClient(cmd.Context())
			if err != nil {
				return err
			}
			price, err := api.FetchTokenPrice(cmd.Context(), chain, types.ContractAddress(contract))
			if err != nil {
				return fmt.Errorf("could not fetch price: %v", err)
			}
			printJson(price)
			return nil
		},
	}
	cmd.Flags().String("contract", "", "Optional contract of token asset")
	return cmd
}

func CmdChains() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List information on all supported chains.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			type chainInfo struct {
				Chain     types.Chain     `yaml:"chain"`
				Ecosystem types.Ecosystem `yaml:"ecosystem"`
			}
			infos := []chainInfo{}
			for _, chain := range types.SupportedChains {
				infos = append(infos, chainInfo{Chain: chain, Ecosystem: chain.Ecosystem()})
			}
			bz, _ := yaml.Marshal(infos)
			fmt.Print(string(bz))
			return nil
		},
	}
}
