package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse/cmd/mailparse/cmd"
)

func main() {
	err := cmd.Execute()

	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
		os.Exit(exitErr.Code)
	}

	cobra.CheckErr(err)
}
