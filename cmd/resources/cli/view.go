package cli

import (
	"errors"
	"fmt"

	"learning-resources/internal/domain"
	apperrors "learning-resources/pkg/errors"

	"github.com/spf13/cobra"
)

// NewViewCommand resolves a resource, dispatches the renderer for its type
// and runs it to a terminal state.
func NewViewCommand() *cobra.Command {
	var name string
	var title string
	var declaredType string
	var resourceID string

	cmd := &cobra.Command{
		Use:   "view <url>",
		Short: "View a resource file",
		Long:  "Resolve a resource and run the matching renderer, reporting its terminal state and download affordance.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := domain.FileRef{URL: args[0], Name: name, Title: title}

			container := newContainer()
			resolved, err := container.Downloads.Resolve(cmd.Context(), ref)
			if err != nil {
				// Resolution exhaustion is the only process failure here; a
				// render error below is a handled state.
				var appErr *apperrors.AppError
				if errors.As(err, &appErr) {
					return fmt.Errorf("%s", appErr.Message)
				}
				return err
			}

			nameOrURL := ref.Name
			if nameOrURL == "" {
				nameOrURL = ref.URL
			}
			kind := container.Viewer.SelectRenderer(nameOrURL, declaredType)
			renderer := container.Viewer.NewRenderer(kind, domain.ViewerInput{
				FileURL:    resolved.EffectiveURL,
				Title:      ref.Title,
				ResourceID: resourceID,
			})

			if renderer.State() == domain.RenderLoading {
				_ = renderer.Load(cmd.Context())
			}

			container.Analytics.NotifyView(resourceID)
			container.Analytics.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "renderer: %s\nstate:    %s\n", renderer.Kind(), renderer.State())
			if rendErr := renderer.Err(); rendErr != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "error:    %s\n", rendErr)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "download: %s\n", renderer.DownloadURL())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Storage-internal file name (defaults to the url's last segment)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Human-readable title")
	cmd.Flags().StringVar(&declaredType, "type", "", "Declared MIME type, used when the name has no extension")
	cmd.Flags().StringVar(&resourceID, "resource-id", "", "Resource ID for usage tracking")

	return cmd
}
