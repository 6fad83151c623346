package shell

import (
	"fmt"
	"strings"
)

// ShellRequest is the argument payload of run_shell_command.
type ShellRequest struct {
	Command     string `json:"command" jsonschema_description:"Exact bash command to execute, run as 'bash -c <command>'."`
	Directory   string `json:"directory,omitempty" jsonschema_description:"Directory to run the command in, relative to the workspace root. Defaults to the root."`
	Description string `json:"description,omitempty" jsonschema_description:"Short explanation of what the command does, shown to the user."`
}

func (r *ShellRequest) Validate() error {
	if strings.TrimSpace(r.Command) == "" {
		return ErrCommandRequired
	}
	return nil
}

func (r *ShellRequest) String() string {
	return fmt.Sprintf("Running %s", r.Command)
}
