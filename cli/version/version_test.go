package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	// Without build-time injection the version is unknown.
	assert.Contains(t, GetVersion(false, false), "oodgen version <unknown>")
	assert.Equal(t, "<unknown>", GetVersion(true, false))
}

func TestGetVersionNormalized(t *testing.T) {
	gitTag = "v1.2.3"
	gitCommit = "f2d687e"
	defer func() {
		gitTag = ""
		gitCommit = ""
	}()

	assert.Equal(t, "1.2.3", GetVersion(true, false))
	assert.Equal(t, "1.2.3.f2d687e", GetVersion(true, true))
	assert.Contains(t, GetVersion(false, false), "oodgen version 1.2.3")
}
