package shell_test

import (
	"testing"

	"fjacquet/bookctl/cmd/shell"

	"github.com/stretchr/testify/assert"
)

func TestShellCommand_Metadata(t *testing.T) {
	assert.Equal(t, "shell", shell.Cmd.Use)
	assert.Contains(t, shell.Cmd.Short, "interactive booking session")
	assert.NotNil(t, shell.Cmd.Run)
}

func TestShellCommand_HelpText(t *testing.T) {
	assert.Contains(t, shell.Cmd.Long, "login or register")
	assert.Contains(t, shell.Cmd.Long, "administrator")
}
