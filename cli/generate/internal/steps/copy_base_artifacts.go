package steps

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"
)

// CopyBaseArtifacts represents the base artifacts copy step.
type CopyBaseArtifacts struct{}

// Run copies the four base template artifacts into the application
// directory. The template directory is copied recursively. A missing
// source artifact or an I/O error aborts the run, leaving the partially
// created destination directory in place.
func (CopyBaseArtifacts) Run(appCtx *AppCtx) error {
	if appCtx.Skipped {
		return nil
	}

	for _, artifact := range BaseArtifacts {
		src := filepath.Join(appCtx.BaseDir, artifact)
		dst := filepath.Join(appCtx.AppPath, artifact)
		log.Debugf("Copying %q to %q", src, dst)
		if err := copy.Copy(src, dst); err != nil {
			return fmt.Errorf("failed to copy base artifact %s: %s", artifact, err)
		}
	}

	return nil
}
