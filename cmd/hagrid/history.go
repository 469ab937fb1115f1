package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/artem13815/hagrid/pkg/console"
)

var (
	historyLimit  int
	historyOffset int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored prompt enhancements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, _, closeStore, err := openStore(ctx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		records, err := store.List(ctx, historyLimit, historyOffset)
		if err != nil {
			logger.Error("list history", zap.Error(err))
			return err
		}
		console.New(cmd.InOrStdin(), cmd.OutOrStdout()).History(records, historyOffset)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of records")
	historyCmd.Flags().IntVar(&historyOffset, "offset", 0, "records to skip")
}
