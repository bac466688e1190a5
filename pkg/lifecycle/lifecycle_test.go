package lifecycle_test

import (
	"testing"

	"github.com/gnames/gnsyn/internal/ioarchive"
	"github.com/gnames/gnsyn/internal/iobuild"
	"github.com/gnames/gnsyn/internal/iomatrix"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestContracts ensures constructors return implementations of
// lifecycle interfaces.
func TestContracts(t *testing.T) {
	cfg := config.New()

	var b lifecycle.Builder = iobuild.New(cfg)
	var a lifecycle.Archiver = ioarchive.New(cfg)
	var p lifecycle.Pivoter = iomatrix.New(t.TempDir())

	assert.NotNil(t, b)
	assert.NotNil(t, a)
	assert.NotNil(t, p)
}
