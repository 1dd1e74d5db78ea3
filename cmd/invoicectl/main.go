package main

import (
	"errors"
	"fmt"
	"os"

	"invoice-manifest/cmd/invoicectl/commands"
	"invoice-manifest/internal/domain"
)

func main() {
	err := commands.Execute()
	switch {
	case err == nil:
		return
	case errors.Is(err, commands.ErrValidationFailed):
		os.Exit(1)
	case domain.IsInputError(err):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
