package patterns

// FieldValue is a parsed license metadata field. Ecosystem manifests shape
// the field three ways: a bare string ("MIT"), a list (first entry wins),
// or an object with a type/name key (npm legacy, NuGet). Each variant
// resolves to a raw license string through the same path.
type FieldValue interface {
	raw() string
}

// StringLicense is a bare license string.
type StringLicense string

// ListLicense is an ordered list of license values; the first one wins.
type ListLicense []FieldValue

// ObjectLicense is an object-shaped field carrying the license under a
// "type" or "name" key.
type ObjectLicense struct {
	Type string
	Name string
}

func (s StringLicense) raw() string { return string(s) }

func (l ListLicense) raw() string {
	if len(l) == 0 {
		return ""
	}
	return l[0].raw()
}

func (o ObjectLicense) raw() string {
	if o.Type != "" {
		return o.Type
	}
	return o.Name
}

// ParseField classifies a dynamically-typed license field into one of the
// FieldValue variants. Unrecognized shapes return false rather than error.
func ParseField(v any) (FieldValue, bool) {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil, false
		}
		return StringLicense(val), true
	case []any:
		var list ListLicense
		for _, item := range val {
			if fv, ok := ParseField(item); ok {
				list = append(list, fv)
			}
		}
		if len(list) == 0 {
			return nil, false
		}
		return list, true
	case []string:
		var list ListLicense
		for _, item := range val {
			if item != "" {
				list = append(list, StringLicense(item))
			}
		}
		if len(list) == 0 {
			return nil, false
		}
		return list, true
	case map[string]any:
		var obj ObjectLicense
		if t, ok := val["type"].(string); ok {
			obj.Type = t
		}
		if n, ok := val["name"].(string); ok {
			obj.Name = n
		}
		if obj.raw() == "" {
			return nil, false
		}
		return obj, true
	case map[string]string:
		obj := ObjectLicense{Type: val["type"], Name: val["name"]}
		if obj.raw() == "" {
			return nil, false
		}
		return obj, true
	default:
		return nil, false
	}
}
