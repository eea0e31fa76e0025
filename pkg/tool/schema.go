package tool

// Property is a single parameter of an object schema.
type Property struct {
	Name        string
	Type        string // "string", "number", "integer", "boolean"
	Description string
	Enum        []string
	Format      string
	Required    bool
}

// ObjectSchema builds a JSON Schema object from properties.
func ObjectSchema(props ...Property) map[string]any {
	properties := make(map[string]any, len(props))
	required := make([]string, 0, len(props))

	for _, p := range props {
		schema := map[string]any{"type": p.Type}
		if p.Description != "" {
			schema["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			schema["enum"] = p.Enum
		}
		if p.Format != "" {
			schema["format"] = p.Format
		}
		properties[p.Name] = schema
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}
