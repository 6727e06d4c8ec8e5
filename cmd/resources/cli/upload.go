package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"learning-resources/internal/domain"
	"learning-resources/pkg/format"

	"github.com/spf13/cobra"
)

// NewUploadCommand uploads one file through the upload coordinator.
func NewUploadCommand() *cobra.Command {
	var title string
	var description string
	var category string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a resource file",
		Long:  "Validate a local file and upload it to the blob storage service with progress feedback.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			stat, err := file.Stat()
			if err != nil {
				return err
			}

			container := newContainer()
			coordinator := container.NewUploadCoordinator()

			coordinator.SelectFile(domain.UploadCandidate{
				Name:      filepath.Base(path),
				SizeBytes: stat.Size(),
				Content:   file,
			})

			coordinator.OnProgress(func(pct int) {
				fmt.Fprintf(cmd.OutOrStdout(), "\ruploading... %3d%%", pct)
			})

			var result domain.UploadResult
			coordinator.OnComplete(func(res domain.UploadResult) {
				result = res
			})

			meta := domain.UploadMetadata{
				Title:       title,
				Description: description,
				Category:    category,
			}
			if !cmd.Flags().Changed("title") {
				meta.Title = coordinator.Title()
			}
			if err := coordinator.Submit(cmd.Context(), meta); err != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nuploaded %s (%s)\n%s\n",
				result.FileName, format.FormatFileSize(result.FileSize), result.FileURL)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Resource title (defaults to the file name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Resource description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Resource category (required)")

	return cmd
}
