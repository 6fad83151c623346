package tool

import "github.com/invopop/jsonschema"

// SchemaFor reflects the JSON Schema of a request struct.
// Fields without omitempty are required; field docs come from jsonschema tags.
func SchemaFor[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	var v T
	schema := reflector.Reflect(v)
	// The model API rejects meta keywords
	schema.Version = ""
	schema.ID = ""
	return schema
}
