package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openweb3-io/chaindata/cmd/chaindata/setup"
	"github.com/openweb3-io/chaindata/types"
)

func main() {
	cmd := &cobra.Command{
		Use:          "chaindata",
		Short:        "Query classified blockchain data from the hosted API",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetCount("verbose")
			if verbose > 0 {
				logrus.SetLevel(logrus.DebugLevel)
			}

			args, err := setup.ClientArgsFromCmd(cmd)
			if err != nil {
				return err
			}

			f, err := setup.LoadFactory(args)
			if err != nil {
				return err
			}

			// The chains command works without --chain; everything else
			// resolves it here.
			var chain types.Chain
			if args.Chain != "" {
				chain, err = setup.LoadChain(args.Chain)
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{
					"chain":     chain,
					"ecosystem": chain.Ecosystem(),
				}).Info("chain")
			}

			cmd.SetContext(setup.CreateContext(f, chain))
			return nil
		},
	}
	setup.AddClientArgs(cmd)
	cmd.PersistentFlags().CountP("verbose", "v", "Enable debug logging.")

	cmd.AddCommand(CmdTxs())
	cmd.AddCommand(CmdTx())
	cmd.AddCommand(CmdBalances())
	cmd.AddCommand(CmdPrice())
	cmd.AddCommand(CmdChains())

	_ = cmd.Execute()
}
