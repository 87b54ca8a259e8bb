package platforms

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformsCommand(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--verbose"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "instagram")
	assert.Contains(t, text, "X (Twitter)")
	assert.Contains(t, text, "linkedin")
	assert.Contains(t, text, "tweet.read")
}
