package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.0.0", "abc123", "2026-01-01"
	assert.Equal(t, "v1.0.0 (commit: abc123, built: 2026-01-01)", String())
}
