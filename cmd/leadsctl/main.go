package main

import (
	"os"

	"provider-leads-service/cmd/leadsctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
