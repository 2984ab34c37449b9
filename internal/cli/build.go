package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aalvaropc/bowgen/internal/domain"
	"github.com/aalvaropc/bowgen/internal/usecase"
	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var workspace string
	var model string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "build",
		Short: "Build a model into a gprMax input deck",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			modelPath, err := resolveModelPath(ws, model)
			if err != nil {
				return err
			}

			var store = ws.store
			if noSave {
				store = nil
			}

			uc := usecase.NewBuildModel(ws.models, store)

			deck, deckID, err := uc.Execute(cmd.Context(), modelPath)
			if err != nil {
				return err
			}

			return printDeck(os.Stdout, deck, deckID, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&model, "model", "m", "", "Model name or path (optional; defaults to workspace default model)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the deck under out/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|deck")

	return c
}

func printDeck(w io.Writer, deck domain.Deck, deckID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include deckID (optional) as a wrapper to avoid changing domain model.
		payload := map[string]any{
			"deck_id":  deckID,
			"model":    deck.ModelName,
			"variant":  deck.Variant,
			"built_at": deck.BuiltAt,
			"deck":     string(deck.Text),
		}
		return enc.Encode(payload)
	case "deck":
		_, err := w.Write(deck.Text)
		return err
	case "pretty", "":
		printPrettyDeck(w, deck, deckID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|deck)", format)
	}
}

func printPrettyDeck(w io.Writer, deck domain.Deck, deckID string) {
	fmt.Fprintf(w, "Model:    %s\n", deck.ModelName)
	fmt.Fprintf(w, "Variant:  %s\n", deck.Variant)
	if !deck.BuiltAt.IsZero() {
		fmt.Fprintf(w, "Built:    %s\n", deck.BuiltAt.UTC().Format(time.RFC3339))
	}
	if deckID != "" {
		fmt.Fprintf(w, "Deck ID:  %s\n", deckID)
	}
	fmt.Fprintf(w, "Commands: %d\n", countCommands(deck.Text))
	fmt.Fprintln(w)
	_, _ = w.Write(deck.Text)
}

func countCommands(text []byte) int {
	n := 0
	for _, b := range text {
		if b == '\n' {
			n++
		}
	}
	return n
}
