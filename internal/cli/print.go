package cli

import (
	"github.com/ksyq12/nginx-deploy/internal/nginx"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the rendered nginx configuration",
	Long: `Render the nginx template with the current settings and print it.

Examples:
  nginx-deploy print
  nginx-deploy print --set stage=staging --set nginx_use_ssl=false`,
	Args: cobra.NoArgs,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	text, err := nginx.Print(newLocator(), s)
	if err != nil {
		return err
	}

	output.Raw(text)
	return nil
}
