package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the built site from the output directory",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		source, _ := cmd.Flags().GetString("source")
		outDir, _ := cmd.Flags().GetString("out")
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(source, outDir)
		}

		if _, err := os.Stat(outDir); err != nil {
			log.Fatalf("Nothing to preview in %s, run build first: %v", outDir, err)
		}

		fmt.Printf("Previewing %s on port %s\n", outDir, port)
		log.Fatal(http.ListenAndServe(":"+port, newPreviewRouter(outDir)))
	},
}

// newPreviewRouter serves dir the way a static host would, falling back to
// the published 404.html for missing files.
func newPreviewRouter(dir string) *httprouter.Router {
	router := httprouter.New()
	files := http.FileServer(http.Dir(dir))

	router.GET("/*filepath", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean(ps.ByName("filepath"))))
		if _, err := os.Stat(name); err != nil {
			servePreviewNotFound(w, r, dir)
			return
		}
		files.ServeHTTP(w, r)
	})

	return router
}

func servePreviewNotFound(w http.ResponseWriter, r *http.Request, dir string) {
	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(notFound)
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("port", "p", "9011", "Port to run the preview server on")
	previewCmd.Flags().StringP("out", "o", "public", "Built site directory, relative to the source directory")
}
