package core

import "strings"

var (
	registry = map[string]Command{}
	order    []string
	cogHelp  = map[string]string{}
)

// Register adds a command to the registry. Called from init() in the
// commands package, so registration order follows file import order.
func Register(cmd Command) {
	name := cmd.Name()
	if _, exists := registry[name]; !exists {
		order = append(order, name)
	}
	registry[name] = cmd
}

// DescribeCog records a cog's help text shown at the top of its docs.
func DescribeCog(name, help string) {
	cogHelp[name] = help
}

// CogHelp returns the registered help text for a cog.
func CogHelp(name string) string {
	return cogHelp[name]
}

// Get returns the command with the given name.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns registered commands in registration order.
func All() []Command {
	out := make([]Command, 0, len(order))
	for _, name := range order {
		out = append(out, registry[name])
	}
	return out
}

// Root unwraps middleware wrappers down to the underlying command, so
// provider interfaces can be type-asserted against the real type.
func Root(cmd Command) Command {
	for {
		w, ok := cmd.(interface{ Unwrap() Command })
		if !ok {
			return cmd
		}
		cmd = w.Unwrap()
	}
}

// Find returns a command by name, case-insensitively.
func Find(name string) (Command, bool) {
	if cmd, ok := registry[name]; ok {
		return cmd, ok
	}
	for n, cmd := range registry {
		if strings.EqualFold(n, name) {
			return cmd, true
		}
	}
	return nil, false
}
