package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olavocarvalho/oop-bank/pkg/money"
	pb "github.com/olavocarvalho/oop-bank/proto"
)

var depositCmd = &cobra.Command{
	Use:   "deposit <cpf> <amount>",
	Short: "Deposit into a client's account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMovement(args, "deposit", func(ctx context.Context, c pb.LedgerServiceClient, req *pb.MovementRequest) (*pb.MovementResponse, error) {
			return c.Deposit(ctx, req)
		})
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <cpf> <amount>",
	Short: "Withdraw from a client's account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMovement(args, "withdraw", func(ctx context.Context, c pb.LedgerServiceClient, req *pb.MovementRequest) (*pb.MovementResponse, error) {
			return c.Withdraw(ctx, req)
		})
	},
}

// runMovement 存款與提款的共同流程：清理 CPF、解析金額、呼叫 RPC
func runMovement(args []string, verb string, call func(context.Context, pb.LedgerServiceClient, *pb.MovementRequest) (*pb.MovementResponse, error)) error {
	cpf, err := cleanCPF(args[0])
	if err != nil {
		return err
	}
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := callCtx()
	defer cancel()

	resp, err := call(ctx, client, &pb.MovementRequest{Cpf: cpf, Amount: amount})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%s failed: %s", verb, resp.Message)
	}

	fmt.Printf("%s of %s ok, balance is now %s\n", verb, money.Format(amount), money.Format(resp.Balance))
	return nil
}

func init() {
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
}
