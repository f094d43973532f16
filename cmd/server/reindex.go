package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	actorrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor"
)

var (
	deleteCorrupted bool
	assumeYes       bool
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the item owner index from stored actors",
	Long: `Scans every stored actor, rebuilds the item to owner index and lists actors whose
data cannot be decoded. With --delete-corrupted those actors are removed after confirmation.`,
	Args: cobra.NoArgs,
	RunE: reindex,
}

func init() {
	reindexCmd.Flags().BoolVar(&deleteCorrupted, "delete-corrupted", false, "Delete actors whose data cannot be decoded")
	reindexCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask before deleting")
}

func reindex(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	fmt.Println("Connected to Redis:", cfg.RedisAddr)
	fmt.Println("Scanning actors...")

	if deleteCorrupted && !assumeYes && !confirm("Delete actors with corrupted data? (yes/no): ") {
		fmt.Println("Aborted - running without deletion")
		deleteCorrupted = false
	}

	out, err := st.actors.Reindex(ctx, actorrepo.ReindexInput{DeleteCorrupted: deleteCorrupted})
	if err != nil {
		return fmt.Errorf("failed to reindex: %w", err)
	}

	fmt.Printf("\nChecked %d actors, indexed %d items\n", out.ActorsScanned, out.ItemsIndexed)
	if len(out.Corrupted) == 0 {
		fmt.Println("No corrupted data found!")
		return nil
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range out.Corrupted {
		fmt.Printf("  - %s\n", key)
	}
	if out.Deleted {
		fmt.Printf("\nDeleted %d corrupted actors\n", len(out.Corrupted))
	}
	return nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(answer) == "yes"
}
