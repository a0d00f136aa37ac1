package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/seanyu/seanyu-space/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

var rootCmd = &cobra.Command{
	Use:   "seanyu-space",
	Short: "seanyu.space - a personal blog",
	Long:  `Builds and serves the seanyu.space blog from a site manifest, markdown posts and plush pages.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			jww.SetStdoutThreshold(jww.LevelDebug)
		} else {
			jww.SetStdoutThreshold(jww.LevelInfo)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("source", "s", "site", "Site source directory")
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultManifest, "Site manifest, relative to the source directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose logging")
}

// loadSource resolves the --source directory and reads the manifest from it.
func loadSource(cmd *cobra.Command) (string, afero.Fs, *config.SiteManifest, error) {
	source, _ := cmd.Flags().GetString("source")
	manifestName, _ := cmd.Flags().GetString("config")

	absSource, err := filepath.Abs(source)
	if err != nil {
		return "", nil, nil, errors.WithStack(err)
	}

	fs := afero.NewBasePathFs(afero.NewOsFs(), absSource)

	manifest, err := config.Load(fs, manifestName)
	if err != nil {
		return "", nil, nil, errors.Wrap(err, "error loading manifest")
	}

	return absSource, fs, manifest, nil
}
