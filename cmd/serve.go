package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"docnav/internal/apihandlers"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the doc navigator as an HTTP API server",
	Long: `Starts an HTTP server exposing the question-answering endpoint plus
health, stats and category listings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		router := gin.Default() // Includes logger and recovery middleware

		apiHandler := apihandlers.NewAPIHandler(appInstance)

		v1 := router.Group("/api/v1")
		{
			queryGroup := v1.Group("/query")
			{
				queryGroup.POST("", apiHandler.RateLimitMiddleware(), apiHandler.QueryHandler)
				queryGroup.GET("", apiHandler.StatusHandler)
			}
			v1.GET("/categories", apiHandler.CategoriesHandler)
			v1.GET("/stats", apiHandler.StatsHandler)
		}

		router.GET("/health", apiHandler.HealthHandler)

		if serveAddr == "" {
			serveAddr = appInstance.Config.Server.Addr
		}
		if servePort == "" {
			servePort = appInstance.Config.Server.Port
		}
		listenAddr := fmt.Sprintf("%s:%s", serveAddr, servePort)
		log.Infof("Starting doc navigator API server on http://%s", listenAddr)

		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on")
}
