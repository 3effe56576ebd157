package cli

import (
	"fmt"

	"github.com/rmarchan/tablero/pkg/application"
	"github.com/rmarchan/tablero/pkg/infrastructure/dashboard"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := loadRepository()
		if err != nil {
			return err
		}

		provider := application.NewReportService(repo, nil)
		server, err := dashboard.NewServer(serveAddr, provider)
		if err != nil {
			return err
		}

		fmt.Printf("Dashboard available at http://%s\n", serveAddr)
		return server.Start()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "Listen address for the web dashboard")
	RootCmd.AddCommand(serveCmd)
}
