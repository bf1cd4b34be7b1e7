// Package cog models the bot's command surface as read-only descriptor
// trees grouped into cogs. The docs engine consumes these descriptors;
// it never touches live session state.
package cog

// Kind separates the two traversal passes the docs engine makes over a
// cog: structured (slash) commands first, then general message commands.
type Kind int

const (
	KindSlash Kind = iota
	KindMessage
)

// Param describes one declared parameter of a command.
type Param struct {
	Name        string
	TypeHint    string
	Default     string
	Description string
	Required    bool
}

// Requirements captures the permission predicates a command declares.
// Permissions holds discordgo permission bits; the owner flags mark
// commands gated on guild or bot ownership rather than a role bit.
type Requirements struct {
	OwnerOnly      bool
	GuildOwnerOnly bool
	Permissions    int64
}

// Command is a single documentable command descriptor. Parent and
// Children form an explicit adjacency so subtree exclusion never has to
// fall back to name-prefix matching.
type Command struct {
	Name          string
	QualifiedName string
	Description   string
	Hidden        bool
	Kind          Kind
	Params        []Param
	Requires      Requirements

	Parent   *Command
	Children []*Command
}

// AddChild links a subcommand under c and returns it.
func (c *Command) AddChild(child *Command) *Command {
	child.Parent = c
	child.Kind = c.Kind
	if child.QualifiedName == "" {
		child.QualifiedName = c.QualifiedName + " " + child.Name
	}
	c.Children = append(c.Children, child)
	return child
}

// Cog is a named bundle of related commands.
type Cog struct {
	Name string
	Help string

	slash   []*Command
	message []*Command
}

// AddSlash appends a root slash command descriptor in traversal order.
func (c *Cog) AddSlash(cmd *Command) {
	cmd.Kind = KindSlash
	if cmd.QualifiedName == "" {
		cmd.QualifiedName = cmd.Name
	}
	c.slash = append(c.slash, cmd)
}

// AddMessage appends a root message command descriptor in traversal order.
func (c *Cog) AddMessage(cmd *Command) {
	cmd.Kind = KindMessage
	if cmd.QualifiedName == "" {
		cmd.QualifiedName = cmd.Name
	}
	c.message = append(c.message, cmd)
}

// WalkSlash returns all slash descriptors depth-first, parents before
// children, preserving registration order.
func (c *Cog) WalkSlash() []*Command {
	return walk(c.slash)
}

// WalkMessage returns all message descriptors depth-first, parents
// before children, preserving registration order.
func (c *Cog) WalkMessage() []*Command {
	return walk(c.message)
}

func walk(roots []*Command) []*Command {
	var out []*Command
	var visit func(*Command)
	visit = func(cmd *Command) {
		out = append(out, cmd)
		for _, child := range cmd.Children {
			visit(child)
		}
	}
	for _, root := range roots {
		visit(root)
	}
	return out
}
