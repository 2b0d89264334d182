package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

// WriteVarsFile represents the variables file write step.
type WriteVarsFile struct{}

// Run writes the derived variable assignments, one per line, to the
// ephemeral vars file inside the application directory. The file is
// consumed by the template interpreter and removed by the cleanup step.
func (WriteVarsFile) Run(appCtx *AppCtx) error {
	if appCtx.Skipped {
		return nil
	}

	varsFilePath := filepath.Join(appCtx.AppPath, VarsFileName)
	content := strings.Join(appCtx.Vars, "\n") + "\n"
	if err := os.WriteFile(varsFilePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write variables file %s: %s", varsFilePath, err)
	}

	log.Debugf("Variables file %q is written", varsFilePath)
	appCtx.VarsFilePath = varsFilePath

	return nil
}
