package javascript

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
	"github.com/seanyu/seanyu-space/config"
	"github.com/spf13/afero"
)

// CompileJSTarget bundles every target with esbuild and writes the output,
// renamed to <name>_<hash>.js plus its source map, into out. Entry points are
// resolved against workDir. It returns the public path of each target's
// bundle keyed by target name.
func CompileJSTarget(workDir string, targets map[string]config.JavascriptTarget, out afero.Fs) (map[string]string, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	emitted := make(map[string]string, len(targets))
	for _, targetName := range names {
		target := targets[targetName]
		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{target.Source},
			AbsWorkingDir:     absWorkDir,
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Engines: []api.Engine{
				{Name: api.EngineChrome, Version: "100"},
				{Name: api.EngineFirefox, Version: "100"},
				{Name: api.EngineSafari, Version: "15"},
				{Name: api.EngineEdge, Version: "100"},
			},
			Sourcemap: api.SourceMapExternal,
			Write:     false,
			Outdir:    filepath.Join(absWorkDir, target.OutDir),
		})

		if len(result.Errors) > 0 {
			return nil, errors.Errorf("compiling javascript target %s: %s", targetName, result.Errors[0].Text)
		}

		// Source maps are named after the hash of their bundle, so bundles go first.
		var regularFiles []api.OutputFile
		var mapFiles []api.OutputFile

		for _, file := range result.OutputFiles {
			if strings.EqualFold(filepath.Ext(file.Path), ".map") {
				mapFiles = append(mapFiles, file)
			} else {
				regularFiles = append(regularFiles, file)
			}
		}

		srcToHash := make(map[string]string)

		for _, file := range append(regularFiles, mapFiles...) {
			base := filepath.Base(file.Path)
			ext := base[strings.Index(base, "."):]
			isMap := ext == ".js.map"
			fileNameWithoutExt := base[:len(base)-len(ext)]

			var hashForFileName string
			if isMap {
				hashForFileName = srcToHash[fileNameWithoutExt]
				if hashForFileName == "" {
					return nil, errors.Errorf("source map %s can not find hash for its source file", fileNameWithoutExt)
				}
			} else {
				hashForFileName = safeHash(file.Hash)
				srcToHash[fileNameWithoutExt] = hashForFileName
			}

			name := fmt.Sprintf("%s_%s%s", fileNameWithoutExt, hashForFileName, ext)
			relDir, err := filepath.Rel(absWorkDir, filepath.Dir(file.Path))
			if err != nil {
				return nil, errors.WithStack(err)
			}
			publicPath := path.Join("/", filepath.ToSlash(relDir), name)

			contents := file.Contents
			if !isMap {
				contents = append(append([]byte{}, contents...), fmt.Sprintf("//# sourceMappingURL=%s.map", name)...)
			}

			if err := out.MkdirAll(path.Dir(publicPath), 0755); err != nil {
				return nil, errors.WithStack(err)
			}
			if err := afero.WriteFile(out, publicPath, contents, 0644); err != nil {
				return nil, errors.Wrapf(err, "failed to write %s", publicPath)
			}

			if !isMap {
				emitted[targetName] = publicPath
			}
		}
	}

	return emitted, nil
}

func safeHash(hash string) string {
	return strings.NewReplacer("/", "", "+", "", "=", "").Replace(hash)
}
