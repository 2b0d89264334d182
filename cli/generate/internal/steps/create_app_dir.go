package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
)

const defaultPermissions = os.FileMode(0755)

// CreateAppDirectory represents the destination directory creation step.
type CreateAppDirectory struct{}

// Run creates the application destination directory. An already existing
// directory is the idempotence marker: the app is marked as skipped and
// the rest of the chain leaves it untouched.
func (CreateAppDirectory) Run(appCtx *AppCtx) error {
	if appCtx.App.AppName == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	appDirectory := filepath.Join(appCtx.AppsDir, appCtx.App.AppName)
	appCtx.AppPath = appDirectory

	if _, err := os.Stat(appDirectory); err == nil {
		log.Debugf("Application directory %q already exists", appDirectory)
		appCtx.Skipped = true
		return nil
	}

	if err := os.MkdirAll(appDirectory, defaultPermissions); err != nil {
		return fmt.Errorf("error creating application dir %s: %s", appDirectory, err)
	}
	log.Debugf("Creating application in %q", appDirectory)

	return nil
}
