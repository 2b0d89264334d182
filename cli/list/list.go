// Package list reports the on-disk status of configured applications.
package list

import (
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/oodtools/oodgen/cli/config"
	"github.com/oodtools/oodgen/cli/util"
)

// Apps shows each configured application with its generation status.
// It is a read-only view: nothing is cloned, copied or rendered.
func Apps(cfg *config.AppsCfg, appsDir string) error {
	if len(cfg.Apps) == 0 {
		log.Info("there are no configured applications")
		return nil
	}

	fmt.Printf("List of configured applications (%s):\n", cfg.Base.AppType)

	for _, app := range cfg.Apps {
		appDir := filepath.Join(appsDir, app.AppName)
		if util.IsDir(appDir) {
			fmt.Printf("%s %s\n", color.GreenString("created"), app.AppName)
		} else {
			fmt.Printf("%s %s\n", color.YellowString("missing"), app.AppName)
		}
	}

	return nil
}
