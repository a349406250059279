package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pb "github.com/olavocarvalho/oop-bank/proto"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List all registered clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx, cancel := callCtx()
		defer cancel()

		resp, err := client.ListClients(ctx, &pb.ListClientsRequest{})
		if err != nil {
			return err
		}
		if len(resp.Clients) == 0 {
			fmt.Println("no clients registered")
			return nil
		}

		for _, c := range resp.Clients {
			fmt.Printf("cpf %s  %s  %s  registered %s\n",
				c.Cpf, c.Name, c.Address, time.Unix(c.RegisteredAt, 0).Format(dateLayout))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clientsCmd)
}
