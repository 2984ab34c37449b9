package cli

import (
	"fmt"

	"github.com/aalvaropc/bowgen/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspace string
	var model string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a model's geometry without writing a deck",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			modelPath, err := resolveModelPath(ws, model)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateModel(ws.models)
			if err := uc.Execute(cmd.Context(), modelPath); err != nil {
				return err
			}

			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&model, "model", "m", "", "Model name or path (optional; defaults to workspace default model)")

	return c
}
