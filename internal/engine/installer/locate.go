package installer

import (
	"encoding/json"
	"errors"
	"path/filepath"

	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// hacsManifest is the subset of hacs.json used to find dashboard resources.
type hacsManifest struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

// LocateLovelaceArtifacts lists the checkout files to install as a Lovelace
// resource bundle. Explicit assets win; otherwise hacs.json provides a
// filename hint that is matched at any depth. An empty result means nothing
// was found in the source tree.
func (i *Installer) LocateLovelaceArtifacts(checkout string, dep domain.Dependency) ([]string, error) {
	if dep.Assets != nil {
		artifacts := make([]string, 0, len(dep.Assets))
		for _, asset := range dep.Assets {
			artifacts = append(artifacts, filepath.Join(checkout, filepath.FromSlash(asset)))
		}
		return artifacts, nil
	}

	manifestPath := filepath.Join(checkout, domain.HacsManifestFileName)
	ok, err := i.fs.Exists(manifestPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat manifest"), "path", manifestPath)
	}
	if !ok {
		return nil, nil
	}

	data, err := i.fs.ReadFile(manifestPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", manifestPath)
	}

	var manifest hacsManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestParseFailed, err), "path", manifestPath)
	}

	hint := manifest.Filename
	if hint == "" && manifest.Name != "" {
		hint = "*" + manifest.Name + "*"
	}
	if hint == "" {
		return nil, nil
	}

	matches, err := i.fs.Glob(checkout, hint)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to search checkout"), "pattern", hint)
	}

	var artifacts []string
	for _, m := range matches {
		if isLovelaceArtifact(m) {
			artifacts = append(artifacts, m)
		}
	}
	return artifacts, nil
}
