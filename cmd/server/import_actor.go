package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bh2e-sheets/internal/entities/bh2e"
	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	actorrepo "github.com/KirkDiggler/bh2e-sheets/internal/repositories/actor"
)

var replaceActor bool

var importActorCmd = &cobra.Command{
	Use:   "import-actor [file]",
	Short: "Store an actor and its items from a JSON file",
	Long: `Reads an actor document and stores it with its item index. Example:

  import-actor wren.json
  import-actor --replace cave-wolf.json`,
	Args: cobra.ExactArgs(1),
	RunE: importActor,
}

func init() {
	importActorCmd.Flags().BoolVar(&replaceActor, "replace", false, "Delete an existing actor with the same ID first")
}

func importActor(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var actor bh2e.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}

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

	if replaceActor {
		out, err := st.actors.Delete(ctx, actorrepo.DeleteInput{ActorID: actor.ID})
		switch {
		case err == nil:
			fmt.Printf("Replaced actor %s (%d items removed)\n", actor.ID, out.ItemsDeleted)
		case !errors.IsNotFound(err):
			return fmt.Errorf("failed to remove actor %s: %w", actor.ID, err)
		}
	}

	if _, err := st.actors.Create(ctx, actorrepo.CreateInput{Actor: &actor}); err != nil {
		return fmt.Errorf("failed to store actor %s: %w", actor.ID, err)
	}

	fmt.Printf("Imported %s %q (%s) with %d items\n", actor.Type, actor.Name, actor.ID, len(actor.Items))
	return nil
}
