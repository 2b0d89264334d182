// Package repo ensures a local working copy of the base template repository.
package repo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/apex/log"
	"github.com/oodtools/oodgen/cli/config"
	"github.com/oodtools/oodgen/cli/util"
)

// Dir returns the base template clone directory under rootDir.
func Dir(rootDir string, base *config.BaseOpts) string {
	return filepath.Join(rootDir, base.GitDir)
}

// Provision ensures a local clone of the base template repository under
// rootDir. An existing directory is trusted as-is: no freshness check,
// no pull, no branch verification. Otherwise a single-branch shallow
// clone of the configured branch is performed. Any clone failure is
// returned to the caller and is expected to abort the run.
func Provision(rootDir string, base *config.BaseOpts, verbose bool) error {
	baseDir := Dir(rootDir, base)
	if _, err := os.Stat(baseDir); err == nil {
		log.Debugf("Base template directory %q already exists, skipping clone", baseDir)
		return nil
	}

	if err := util.CheckRequiredBinaries("git"); err != nil {
		return err
	}

	log.Infof("Cloning %s (branch %s) into %q", base.GitURL, base.GitBranch, baseDir)
	cloneCmd := exec.Command("git", "clone", "--single-branch",
		"--branch", base.GitBranch, "--depth", "1", base.GitURL, baseDir)
	if err := util.RunCommand(cloneCmd, rootDir, verbose); err != nil {
		return fmt.Errorf("failed to clone base template repository: %s", err)
	}

	return nil
}
