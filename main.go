package main

import (
	"fmt"
	"os"

	"custodian/cmd"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "custodian stopped: %s\n", err)
		os.Exit(1)
	}
}
