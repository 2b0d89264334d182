package steps

import (
	"path/filepath"

	"github.com/apex/log"
)

// RenderTemplates represents the form and manifest render step.
type RenderTemplates struct{}

// Run renders the form and manifest descriptors from their templates.
// Cleanup of the template sources happens in a separate step only after
// both renders succeed, so a failed render leaves the sources and the
// vars file in place.
func (RenderTemplates) Run(appCtx *AppCtx) error {
	if appCtx.Skipped {
		return nil
	}

	renders := []struct {
		src string
		dst string
	}{
		{FormTemplateName, FormName},
		{ManifestTemplateName, ManifestName},
	}

	for _, render := range renders {
		srcPath := filepath.Join(appCtx.AppPath, render.src)
		dstPath := filepath.Join(appCtx.AppPath, render.dst)
		log.Debugf("Rendering %q to %q", srcPath, dstPath)
		if err := appCtx.Renderer.RenderFile(appCtx.VarsFilePath, srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}
