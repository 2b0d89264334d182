package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// Cleanup represents the template sources removal step.
type Cleanup struct{}

// Run removes the rendered template sources and the variables file,
// leaving only the rendered outputs plus the verbatim-copied artifacts.
func (Cleanup) Run(appCtx *AppCtx) error {
	if appCtx.Skipped {
		return nil
	}

	filesToRemove := []string{
		filepath.Join(appCtx.AppPath, FormTemplateName),
		filepath.Join(appCtx.AppPath, ManifestTemplateName),
		appCtx.VarsFilePath,
	}

	for _, filePath := range filesToRemove {
		log.Debugf("Removing %q", filePath)
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("failed to remove %s: %s", filePath, err)
		}
	}

	return nil
}
