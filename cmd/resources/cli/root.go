// Package cli implements the resources command-line client. Each command
// builds the same dependency container the gateway uses and drives the
// internal services directly.
package cli

import (
	"log"

	"learning-resources/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the root of the command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "resources",
		Short:         "Learning resource files client",
		Long:          "Upload, download and view learning-resource files stored in the remote blob storage service.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				log.Printf("Warning: .env file not found or could not be loaded: %v", err)
			}
		},
	}

	return cmd
}

func newContainer() *config.Container {
	return config.NewContainer()
}
