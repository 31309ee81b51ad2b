package scrapers

// Params is the friendly, domain-specific parameter set for one
// invocation. Keys follow the documented snake_case names; values arrive
// as decoded JSON, so numbers are float64 and lists are []interface{}.
type Params map[string]interface{}

func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

func (p Params) Int(key string, def int) int {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	}
	return def
}

func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

// StringSlice accepts both a JSON array and a single bare string.
func (p Params) StringSlice(key string) []string {
	v, ok := p[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, e := range list {
			if s, ok := e.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return list
	case string:
		if list == "" {
			return nil
		}
		return []string{list}
	}
	return nil
}

// Has reports whether the key is present with a non-nil value. Adapters
// use it for inputs whose mere presence changes actor behavior.
func (p Params) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}
