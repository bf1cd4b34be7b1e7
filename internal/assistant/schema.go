package assistant

// FunctionSchema describes one lookup in the JSON function-calling
// format the assistant integration registers.
type FunctionSchema struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

type Parameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Schemas returns the registration payload for the four lookups.
func Schemas() []FunctionSchema {
	return []FunctionSchema{
		{
			Name:        "get_command_info",
			Description: "Get info about a specific command",
			Parameters: Parameters{
				Type: "object",
				Properties: map[string]Property{
					"command_name": {Type: "string", Description: "name of the command"},
				},
				Required: []string{"command_name"},
			},
		},
		{
			Name:        "get_command_names",
			Description: "Get a list of commands for a cog",
			Parameters: Parameters{
				Type: "object",
				Properties: map[string]Property{
					"cog_name": {Type: "string", Description: "name of the cog, case sensitive"},
				},
				Required: []string{"cog_name"},
			},
		},
		{
			Name:        "get_cog_info",
			Description: "Get the description for a cog",
			Parameters: Parameters{
				Type: "object",
				Properties: map[string]Property{
					"cog_name": {Type: "string", Description: "name of the cog, case sensitive"},
				},
				Required: []string{"cog_name"},
			},
		},
		{
			Name:        "get_cog_list",
			Description: "Get a list of currently loaded cogs by name",
			Parameters: Parameters{
				Type:       "object",
				Properties: map[string]Property{},
			},
		},
	}
}
