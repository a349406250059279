package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olavocarvalho/oop-bank/pkg/money"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

var openCmd = &cobra.Command{
	Use:   "open <cpf>",
	Short: "Open an account for a registered client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cpf, err := cleanCPF(args[0])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		resp, err := client.OpenAccount(ctx, &pb.OpenAccountRequest{Cpf: cpf})
		if err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("open account failed: %s", resp.Message)
		}

		fmt.Printf("account %d opened for cpf %s\n", resp.AccountNumber, cpf)
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List all open accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		resp, err := client.ListAccounts(ctx, &pb.ListAccountsRequest{})
		if err != nil {
			return err
		}
		if len(resp.Accounts) == 0 {
			fmt.Println("no accounts open")
			return nil
		}

		for _, acc := range resp.Accounts {
			fmt.Printf("branch %s  account %d  %s (cpf %s)  %s\n",
				acc.Branch, acc.Number, acc.OwnerName, acc.OwnerCpf, money.Format(acc.Balance))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(accountsCmd)
}
