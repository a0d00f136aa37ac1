package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seanyu/seanyu-space/handlers"
	"github.com/seanyu/seanyu-space/javascript"
	"github.com/seanyu/seanyu-space/publish"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Building static site...")

		source, fs, manifest, err := loadSource(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		outDir, _ := cmd.Flags().GetString("out")
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(source, outDir)
		}

		// Create public directory
		err = os.MkdirAll(outDir, os.ModePerm)
		if err != nil {
			fmt.Printf("Error creating public directory: %v\n", err)
			os.Exit(1)
		}
		out := afero.NewBasePathFs(afero.NewOsFs(), outDir)

		minify, _ := cmd.Flags().GetBool("minify")
		publisher := publish.New(out, publish.Options{Minify: minify})

		// Copy static files
		err = publisher.CopyStatic(fs, "static")
		if err != nil {
			fmt.Printf("Error copying static files: %v\n", err)
			os.Exit(1)
		}

		scripts, err := javascript.CompileJSTarget(source, manifest.JavascriptTargets, out)
		if err != nil {
			fmt.Printf("Error compiling javascript: %v\n", err)
			os.Exit(1)
		}
		for name, p := range scripts {
			jww.INFO.Printf("Bundled %s -> %s", name, p)
		}

		site, err := handlers.NewSite(fs, manifest, handlers.WithScripts(scripts))
		if err != nil {
			fmt.Printf("Error loading site: %v\n", err)
			os.Exit(1)
		}

		router, err := site.SetupRouter()
		if err != nil {
			fmt.Printf("Error setting up router: %v\n", err)
			os.Exit(1)
		}

		// Generate static pages, sitemap and feed
		err = publisher.Publish(cmd.Context(), router, site.Routes())
		if err != nil {
			fmt.Printf("Error generating static pages: %v\n", err)
			os.Exit(1)
		}

		err = publisher.PublishNotFound(cmd.Context(), router)
		if err != nil {
			fmt.Printf("Error generating 404 page: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Static site generated successfully in %s\n", outDir)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "public", "Output directory, relative to the source directory")
	buildCmd.Flags().Bool("minify", true, "Minify generated HTML and XML")
}
