package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/olavocarvalho/oop-bank/pkg/money"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

const dateLayout = "02/01/2006"

var statementCmd = &cobra.Command{
	Use:   "statement <cpf>",
	Short: "Print the account statement for a client",
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

		resp, err := client.GetStatement(ctx, &pb.StatementRequest{Cpf: cpf})
		if err != nil {
			return err
		}

		fmt.Printf("================ STATEMENT - ACCOUNT %d ================\n", resp.AccountNumber)
		fmt.Printf("%s - branch %s\n", resp.BankName, resp.Branch)
		fmt.Printf("client: %s (cpf %s), registered %s\n",
			resp.OwnerName, resp.OwnerCpf, time.Unix(resp.RegisteredAt, 0).Format(dateLayout))
		fmt.Println("-------------------------------------------------------")
		if len(resp.Entries) == 0 {
			fmt.Println("no transactions recorded")
		} else {
			for _, e := range resp.Entries {
				fmt.Printf("%s  %-10s %s\n",
					time.Unix(e.CreatedAt, 0).Format("02/01/2006 15:04:05"),
					kindLabel(e.Kind), money.Format(e.Amount))
			}
		}
		fmt.Println("-------------------------------------------------------")
		fmt.Printf("balance: %s\n", money.Format(resp.Balance))
		return nil
	},
}

// kindLabel 把交易類型轉成對帳單上的短名稱
func kindLabel(kind pb.TransactionKind) string {
	switch kind {
	case pb.TransactionKind_TRANSACTION_KIND_DEPOSIT:
		return "deposit"
	case pb.TransactionKind_TRANSACTION_KIND_WITHDRAWAL:
		return "withdrawal"
	default:
		return "unknown"
	}
}

func init() {
	rootCmd.AddCommand(statementCmd)
}
