package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pocketledger/pocket/internal/logging"
	"github.com/pocketledger/pocket/internal/model"
)

func newTxnCommand(opts *globalOptions) *cobra.Command {
	txnCmd := &cobra.Command{
		Use:   "txn",
		Short: "Transaction operations",
	}
	txnCmd.AddCommand(newTxnNewCommand(opts))
	return txnCmd
}

// txnView is the printed form of a transaction.
type txnView struct {
	ID     string `yaml:"id"`
	Wallet string `yaml:"wallet"`
	Kind   string `yaml:"kind"`
	Amount string `yaml:"amount"`
	Note   string `yaml:"note,omitempty"`
	Day    string `yaml:"day"`
	Date   string `yaml:"date"`
	UTC    string `yaml:"utc,omitempty"`
}

func newTxnNewCommand(opts *globalOptions) *cobra.Command {
	var flags dayFlags
	var amount, wallet, note, id string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a transaction dated on a picked day and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			day, err := flags.parseDay()
			if err != nil {
				return err
			}
			at, err := flags.parseAt()
			if err != nil {
				return err
			}
			if id == "" {
				id = uuid.NewString()
			}

			txn := model.Transaction{
				ID:       id,
				WalletID: wallet,
				Amount:   amt,
				Note:     note,
			}
			txn.ApplyDayAt(at, day, loc)

			log, _ := logging.SubFrom(cmd.Context(), "txn")
			log.Debug("built transaction", zap.String("id", txn.ID), zap.Time("date", txn.Date))

			view := txnView{
				ID:     txn.ID,
				Wallet: txn.WalletID,
				Kind:   string(txn.Kind()),
				Amount: txn.Amount.StringFixed(2),
				Note:   txn.Note,
				Day:    txn.Day(loc).String(),
				Date:   txn.Date.Format(cfg.Output.Layout),
			}
			if showUTC(cfg, loc) {
				view.UTC = txn.Date.UTC().Format(cfg.Output.Layout)
			}

			data, err := yaml.Marshal(view)
			if err != nil {
				return fmt.Errorf("marshaling transaction: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "signed amount, negative for expenses (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&wallet, "wallet", "cash", "wallet ID")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	cmd.Flags().StringVar(&id, "id", "", "transaction ID (default: random UUID)")
	flags.register(cmd)

	return cmd
}
