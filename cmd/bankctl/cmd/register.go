package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	pb "github.com/olavocarvalho/oop-bank/proto"
)

var (
	registerName    string
	registerAddress string
)

var registerCmd = &cobra.Command{
	Use:   "register <cpf>",
	Short: "Register a new client",
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

		resp, err := client.RegisterClient(ctx, &pb.RegisterClientRequest{
			Cpf:     cpf,
			Name:    registerName,
			Address: registerAddress,
		})
		if err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("register failed: %s", resp.Message)
		}

		fmt.Printf("client %s (cpf %s) registered\n", registerName, cpf)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "client full name")
	registerCmd.Flags().StringVar(&registerAddress, "address", "", "postal address")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("address")
	rootCmd.AddCommand(registerCmd)
}
