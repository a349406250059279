package main

import (
	"os"

	"github.com/olavocarvalho/oop-bank/cmd/bankctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
