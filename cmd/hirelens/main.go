// Package main provides the entry point for the hirelens matching engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hirelens",
	Short: "Resume / job description matching engine",
	Long:  "hirelens scores how well candidate documents match a target job description, combining lexical and semantic signals into a ranked verdict.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
