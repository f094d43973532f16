// Package main is the entry point for the sheet gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bh2e-sheets/cmd/server/client"
)

var (
	envFile   string
	redisAddr string
)

var rootCmd = &cobra.Command{
	Use:   "bh2e-sheets",
	Short: "Black Hack 2e sheet server",
	Long:  `bh2e-sheets tracks usage dice, armour dice and equipment quantities for Black Hack 2e actors and resolves their attacks over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional env file read before the environment")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "Redis address, overrides BH2E_REDIS_ADDR")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(importActorCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
