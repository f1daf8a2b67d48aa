package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
}

func TestString(t *testing.T) {
	orig := commit
	t.Cleanup(func() { commit = orig })

	commit = ""
	assert.Equal(t, GetVersion(), String())

	commit = "abc1234"
	assert.Equal(t, GetVersion()+" (abc1234)", String())
}
