package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/portfolio/internal/client/session"
)

func newImageCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Upload or delete images",
	}

	var folder string
	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image (5MB max)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guard.Require(cmd.Context(), func(s session.Snapshot) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				img, err := a.api.UploadImage(cmd.Context(), s.Token, folder, args[0], f)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "url: %s\npublicId: %s\n", img.URL, img.PublicID)
				return nil
			})
		},
	}
	upload.Flags().StringVar(&folder, "folder", "", "destination folder (server default when empty)")

	del := &cobra.Command{
		Use:   "delete <publicId>",
		Short: "Delete an uploaded image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guard.Require(cmd.Context(), func(s session.Snapshot) error {
				if err := a.api.DeleteImage(cmd.Context(), s.Token, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Image deleted")
				return nil
			})
		},
	}

	cmd.AddCommand(upload, del)
	return cmd
}
