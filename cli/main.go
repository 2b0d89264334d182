package main

import (
	"log"

	"github.com/oodtools/oodgen/cli/cmd"
	"github.com/oodtools/oodgen/cli/util"
	"github.com/oodtools/oodgen/cli/version"
)

func main() {
	defer func() {
		// In case the program panics, recover captures the value given
		// to panic and resumes normal execution, handling the error below.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s",
					version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
