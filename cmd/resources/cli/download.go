package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"learning-resources/internal/domain"
	"learning-resources/internal/service"
	"learning-resources/pkg/format"

	"github.com/spf13/cobra"
)

// NewDownloadCommand resolves a working URL for a stored file and saves the
// bytes locally under the human-readable name.
func NewDownloadCommand() *cobra.Command {
	var name string
	var title string
	var outputDir string
	var resourceID string

	cmd := &cobra.Command{
		Use:   "download <url>",
		Short: "Download a resource file",
		Long:  "Resolve a working byte-serving URL across the metadata service and the recorded URL, then save the file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.FileRef{URL: args[0], Name: name, Title: title}

			container := newContainer()
			resolved, err := container.Downloads.Resolve(cmd.Context(), ref)
			if err != nil {
				return err
			}

			fileName := service.DownloadFileName(ref)
			target := filepath.Join(outputDir, fileName)

			out, err := os.Create(target)
			if err != nil {
				return err
			}
			defer out.Close()

			written, saveErr := container.Downloads.SaveTo(cmd.Context(), resolved.EffectiveURL, out)
			if saveErr != nil {
				// Last resort: the user can still fetch the bytes manually.
				// This counts as a failed download for tracking purposes.
				_ = os.Remove(target)
				fmt.Fprintf(cmd.OutOrStdout(), "download trigger failed; open this link manually:\n%s\n", resolved.EffectiveURL)
				return saveErr
			}

			container.Analytics.NotifyDownload(resourceID)
			container.Analytics.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s) via %s\n",
				target, format.FormatFileSize(written), resolved.StrategyUsed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Storage-internal file name (defaults to the url's last segment)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Human-readable title used for the saved file name")
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to save into")
	cmd.Flags().StringVar(&resourceID, "resource-id", "", "Resource ID for usage tracking")

	return cmd
}
