package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage entity images",
}

var imageUploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Upload an image and print its hosted URL",
	Long: `Upload a local image to the asset host and print the hosted URL,
ready for --image-url / --image flags on zone and stall commands.

Files must be images of at most 4MB. Pass --url instead of a file to
use an already-hosted image; no upload happens on that path.

Examples:
  expoctl image upload poster.png
  expoctl image upload --url https://example.com/poster.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImageUpload,
}

func init() {
	imageUploadCmd.Flags().String("url", "", "use this URL directly instead of uploading")

	imageCmd.AddCommand(imageUploadCmd)
	rootCmd.AddCommand(imageCmd)
}

func runImageUpload(cmd *cobra.Command, args []string) error {
	client, store := getClient()
	if err := requireSession(store); err != nil {
		return err
	}

	directURL, _ := cmd.Flags().GetString("url")
	if directURL != "" {
		if done, err := printStructured(map[string]string{"url": directURL}); done {
			return err
		}
		fmt.Println(directURL)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("provide an image file or --url")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	url, err := client.Images.Upload(cmd.Context(), args[0], f)
	if err != nil {
		return err
	}

	if done, err := printStructured(map[string]string{"url": url}); done {
		return err
	}
	fmt.Println(url)
	return nil
}
