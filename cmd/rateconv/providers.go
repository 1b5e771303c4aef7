package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myoffe/rateconv/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported providers and their sheet layouts",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range provider.All {
			fmt.Printf("%-10s %s\n", p.Name, p.Quirks)
		}
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
