package calculator

import "github.com/dmitrymomot/statetools/pkg/tool"

// Tool names as exposed to LLM tool-calling frameworks.
const (
	ToolName        = "calculator_tool"
	HistoryToolName = "calculator_history"
)

var sessionIDProperty = tool.Property{
	Name:        "session_id",
	Type:        "string",
	Format:      "uuid",
	Description: "Session identifier returned by create_session. Pass it on every call; do not reveal it to the user.",
	Required:    true,
}

// Definition describes the calculator tool's parameters.
func Definition() tool.Definition {
	return tool.Definition{
		Name:        ToolName,
		Description: "A stateful calculator that keeps the calculation history in the session.",
		Parameters: tool.ObjectSchema(
			sessionIDProperty,
			tool.Property{
				Name:        "operation",
				Type:        "string",
				Enum:        OperationNames(),
				Description: "Arithmetic operation to apply to a and b.",
				Required:    true,
			},
			tool.Property{Name: "a", Type: "number", Description: "Left operand.", Required: true},
			tool.Property{Name: "b", Type: "number", Description: "Right operand.", Required: true},
		),
	}
}

// HistoryDefinition describes the history lookup tool.
func HistoryDefinition() tool.Definition {
	return tool.Definition{
		Name:        HistoryToolName,
		Description: "Returns every calculation recorded in the session, oldest first.",
		Parameters:  tool.ObjectSchema(sessionIDProperty),
	}
}
