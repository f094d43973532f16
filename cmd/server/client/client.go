// Package client provides test commands for the sheet gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/bh2e-sheets/internal/errors"
	"github.com/KirkDiggler/bh2e-sheets/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the sheet service",
	Long:  `Client commands allow you to exercise the sheet service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Item commands
	ClientCmd.AddCommand(itemCommand("roll-usage-die", "Roll an item's usage die", v1alpha1.MethodRollUsageDie))
	ClientCmd.AddCommand(itemCommand("reset-usage-die", "Reset an item's usage die to its maximum", v1alpha1.MethodResetUsageDie))
	ClientCmd.AddCommand(itemCommand("break-armour-die", "Break one armour die", v1alpha1.MethodBreakArmourDie))
	ClientCmd.AddCommand(itemCommand("repair-armour-die", "Repair one armour die", v1alpha1.MethodRepairArmourDie))
	ClientCmd.AddCommand(itemCommand("increment-quantity", "Add one to an item's quantity", v1alpha1.MethodIncrementQuantity))
	ClientCmd.AddCommand(itemCommand("decrement-quantity", "Remove one from an item's quantity", v1alpha1.MethodDecrementQuantity))
	ClientCmd.AddCommand(itemCommand("prepare-magic", "Prepare a spell or prayer", v1alpha1.MethodPrepareMagic))
	ClientCmd.AddCommand(itemCommand("unprepare-magic", "Clear a prepared spell or prayer", v1alpha1.MethodUnprepareMagic))
	ClientCmd.AddCommand(castMagicCmd)
	ClientCmd.AddCommand(itemCommand("delete-item", "Delete an item from its owner", v1alpha1.MethodDeleteItem))
	ClientCmd.AddCommand(attackCmd)

	// Actor commands
	ClientCmd.AddCommand(actorCommand("reset-all-usage-dice", "Reset every usage die an actor owns", v1alpha1.MethodResetAllUsageDice))
	ClientCmd.AddCommand(actorCommand("repair-all-armour", "Repair every armour die an actor owns", v1alpha1.MethodRepairAllArmourDice))
	ClientCmd.AddCommand(actorCommand("character-sheet", "Show a character sheet", v1alpha1.MethodGetCharacterSheet))
	ClientCmd.AddCommand(actorCommand("creature-sheet", "Show a creature sheet", v1alpha1.MethodGetCreatureSheet))
	ClientCmd.AddCommand(attributeTestCmd)
}

// createSheetClient creates a sheet service client
func createSheetClient() (*v1alpha1.SheetServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewSheetServiceClient(conn), cleanup, nil
}

// call sends fields to method and prints the response
func call(method string, fields map[string]any) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createSheetClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		err = errors.FromGRPCError(err)
		if reason, ok := errors.GetMeta(err)[errors.MetaReason]; ok {
			return fmt.Errorf("%s refused (%v): %w", method, reason, err)
		}
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
