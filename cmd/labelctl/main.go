package main

import (
	"os"

	"shippinglabel/cmd/labelctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
