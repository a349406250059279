package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olavocarvalho/oop-bank/pkg/money"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

var transferCmd = &cobra.Command{
	Use:   "transfer <from-cpf> <to-cpf> <amount>",
	Short: "Transfer between two clients' accounts",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromCPF, err := cleanCPF(args[0])
		if err != nil {
			return err
		}
		toCPF, err := cleanCPF(args[1])
		if err != nil {
			return err
		}
		amount, err := money.Parse(args[2])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		resp, err := client.Transfer(ctx, &pb.TransferRequest{
			FromCpf: fromCPF,
			ToCpf:   toCPF,
			Amount:  amount,
		})
		if err != nil {
			return err
		}
		if !resp.Success {
			// 沖正失敗代表來源帳戶餘額已不一致，必須醒目地提示人工處理
			if resp.ReconciliationRequired {
				fmt.Fprintf(os.Stderr, "!!! ATTENTION: reversal failed, source account needs manual reconciliation !!!\n")
			}
			return fmt.Errorf("transfer failed: %s", resp.Message)
		}

		fmt.Printf("transfer of %s ok, source balance is now %s\n",
			money.Format(amount), money.Format(resp.SourceBalance))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transferCmd)
}
