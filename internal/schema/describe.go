package schema

// Document is a JSON Schema rendering of a Schema, used to publish the
// catalog's contracts.
type Document struct {
	Title                string               `json:"title,omitempty"`
	Type                 string               `json:"type,omitempty"`
	Format               string               `json:"format,omitempty"`
	Enum                 []string             `json:"enum,omitempty"`
	Properties           map[string]*Document `json:"properties,omitempty"`
	Required             []string             `json:"required,omitempty"`
	AdditionalProperties *bool                `json:"additionalProperties,omitempty"`
	Items                *Document            `json:"items,omitempty"`
	MaxItems             *int                 `json:"maxItems,omitempty"`
	ReadOnly             bool                 `json:"readOnly,omitempty"`
}

// JSONSchema renders s as a Document. Intersections of objects are flattened
// into one object whose required list and additionalProperties reflect every
// part.
func JSONSchema(s Schema) *Document {
	switch t := s.(type) {
	case *primitive:
		return &Document{Title: t.name, Type: t.kind, Format: t.format}
	case *enum:
		return &Document{Title: t.name, Type: "string", Enum: t.Values()}
	case *array:
		d := &Document{Title: t.name, Type: "array", Items: JSONSchema(t.item)}
		if t.maxItems > 0 {
			n := t.maxItems
			d.MaxItems = &n
		}
		return d
	case shape:
		d := &Document{Title: s.Name(), Type: "object", Properties: make(map[string]*Document)}
		describeShape(d, t)
		if t.rejectsUnknown() {
			no := false
			d.AdditionalProperties = &no
		}
		return d
	default:
		return &Document{Title: s.Name()}
	}
}

func describeShape(d *Document, s shape) {
	switch t := s.(type) {
	case *Object:
		for _, f := range t.fields {
			prop := JSONSchema(f.Schema)
			prop.ReadOnly = prop.ReadOnly || t.readonly
			d.Properties[f.Name] = prop
			if t.required && !contains(d.Required, f.Name) {
				d.Required = append(d.Required, f.Name)
			}
		}
	case *intersection:
		for _, p := range t.parts {
			if sh, ok := p.(shape); ok {
				describeShape(d, sh)
			}
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
