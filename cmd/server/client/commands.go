package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/bh2e-sheets/internal/engine"
	"github.com/KirkDiggler/bh2e-sheets/internal/handlers/sheet/v1alpha1"
)

var (
	attackAttribute string
	advantage       bool
	disadvantage    bool
	asRitual        bool
)

// itemCommand builds a command that sends a single item ID to method
func itemCommand(use, short, method string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [item-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return call(method, map[string]any{v1alpha1.FieldItemID: args[0]})
		},
	}
}

// actorCommand builds a command that sends a single actor ID to method
func actorCommand(use, short, method string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [actor-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return call(method, map[string]any{v1alpha1.FieldActorID: args[0]})
		},
	}
}

var attackCmd = &cobra.Command{
	Use:   "attack [item-id]",
	Short: "Attack with a weapon",
	Long: `Roll an attack under an attribute of the weapon's owner. Examples:

  attack act_wren-sword
  attack act_wren-bow --attribute dexterity --advantage`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.MethodAttack, map[string]any{
			v1alpha1.FieldItemID:    args[0],
			v1alpha1.FieldAttribute: attackAttribute,
			v1alpha1.FieldKind:      string(engine.FormulaKindFromModifiers(advantage, disadvantage)),
		})
	},
}

var attributeTestCmd = &cobra.Command{
	Use:   "attribute-test [actor-id] [attribute]",
	Short: "Roll a d20 under one of an actor's attributes",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.MethodAttributeTest, map[string]any{
			v1alpha1.FieldActorID:   args[0],
			v1alpha1.FieldAttribute: args[1],
			v1alpha1.FieldKind:      string(engine.FormulaKindFromModifiers(advantage, disadvantage)),
		})
	},
}

var castMagicCmd = &cobra.Command{
	Use:   "cast-magic [item-id]",
	Short: "Cast a spell or prayer",
	Long: `Cast a prepared spell or prayer, spending the preparation. With --ritual the
magic is cast as a ritual and stays as it is. Examples:

  cast-magic act_wren-sleep
  cast-magic act_wren-bless --ritual`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.MethodCastMagic, map[string]any{
			v1alpha1.FieldItemID:   args[0],
			v1alpha1.FieldAsRitual: asRitual,
		})
	},
}

func init() {
	castMagicCmd.Flags().BoolVar(&asRitual, "ritual", false, "Cast as a ritual without preparation")
	attackCmd.Flags().StringVar(&attackAttribute, "attribute", "", "Attribute to roll under (default strength)")
	for _, cmd := range []*cobra.Command{attackCmd, attributeTestCmd} {
		cmd.Flags().BoolVar(&advantage, "advantage", false, "Roll with advantage")
		cmd.Flags().BoolVar(&disadvantage, "disadvantage", false, "Roll with disadvantage")
	}
}
