package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/seanyu/seanyu-space/handlers"
	"github.com/seanyu/seanyu-space/javascript"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")

		source, fs, manifest, err := loadSource(cmd)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		// Bundles only live in memory while serving.
		generated := afero.NewMemMapFs()
		scripts, err := javascript.CompileJSTarget(source, manifest.JavascriptTargets, generated)
		if err != nil {
			log.Fatalf("Error compiling javascript: %v", err)
		}

		site, err := handlers.NewSite(fs, manifest, handlers.WithScripts(scripts), handlers.WithAssets(generated))
		if err != nil {
			log.Fatalf("Error loading site: %v", err)
		}

		router, err := site.SetupRouter()
		if err != nil {
			log.Fatalf("Error setting up router: %v", err)
		}

		fmt.Printf("Starting server on port %s\n", port)
		log.Fatal(http.ListenAndServe(":"+port, router))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
