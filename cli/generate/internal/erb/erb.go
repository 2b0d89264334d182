// Package erb renders ERB templates with an injected variables file.
package erb

import (
	"fmt"
	"os"

	"github.com/oodtools/oodgen/cli/util"
)

// Renderer is an interface for ERB template rendering.
type Renderer interface {
	// RenderFile renders templatePath to outPath using variable
	// assignments from varsFile.
	RenderFile(varsFile string, templatePath string, outPath string) error
}

// CliRenderer renders templates by invoking the external erb interpreter,
// which is a part of the Ruby standard library.
type CliRenderer struct{}

// RenderFile renders templatePath to outPath by running
// `erb -T - -r <varsFile> <templatePath>` with the standard output
// redirected to outPath. The interpreter is spawned directly, without
// a shell, so configuration-supplied values cannot be interpolated
// into a command line.
func (r CliRenderer) RenderFile(varsFile string, templatePath string, outPath string) error {
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating %s: %s", outPath, err)
	}
	defer outFile.Close()

	if err := util.ExecuteCommandToFile("erb", "", outFile,
		"-T", "-", "-r", varsFile, templatePath); err != nil {
		return fmt.Errorf("template rendering failed for %s: %s", templatePath, err)
	}

	return nil
}
