package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommand_Metadata(t *testing.T) {
	assert.Equal(t, "migrate", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
	assert.NotNil(t, Cmd.RunE)
}

func TestMigrateCommand_Flags(t *testing.T) {
	statusFlag := Cmd.Flags().Lookup("status")
	require.NotNil(t, statusFlag)
	assert.Equal(t, "s", statusFlag.Shorthand)
	assert.Equal(t, "false", statusFlag.DefValue)

	downFlag := Cmd.Flags().Lookup("down")
	require.NotNil(t, downFlag)
	assert.Equal(t, "d", downFlag.Shorthand)
	assert.Equal(t, "0", downFlag.DefValue)
}
