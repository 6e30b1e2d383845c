package cli

import (
	"fmt"

	"github.com/behren-q/qturn/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Start the HTTP API that exposes the solver over /api/solve.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		fmt.Printf("Starting qturn API at http://%s\n", addr)

		server := web.NewServer()
		if err := server.Start(addr); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to bind the server to")
}
