package domain

import "strings"

// serviceEntry maps a Correios service code to its display name.
type serviceEntry struct {
	code string
	name string
}

// services is the fixed catalog of Correios services offered by the plugin,
// in display order.
var services = []serviceEntry{
	{"04014", "Sedex à vista"},
	{"04510", "PAC à vista"},
	{"04782", "Sedex 12 (à vista)"},
	{"04790", "Sedex 10 (à vista)"},
	{"04804", "Sedex Hoje"},
}

// ServiceName returns the display name for a Correios service code, or ""
// when the code is not in the catalog.
func ServiceName(code string) string {
	for _, s := range services {
		if s.code == code {
			return s.name
		}
	}
	return ""
}

// ServiceCode returns the Correios service code for a display name, or ""
// when the name is not in the catalog.
func ServiceCode(name string) string {
	for _, s := range services {
		if s.name == name {
			return s.code
		}
	}
	return ""
}

// ServiceNames returns all known service names in catalog order.
func ServiceNames() []string {
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = s.name
	}
	return names
}

// EncodeSelectedServices persists a selection of service names as a single
// string. Each code is wrapped in brackets so that a short numeric code can
// never be misread as a substring of a longer one, and entries are joined
// with ":". Unknown names are dropped.
func EncodeSelectedServices(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		code := ServiceCode(name)
		if code == "" {
			continue
		}
		sb.WriteString("[" + code + "]:")
	}
	return strings.TrimSuffix(sb.String(), ":")
}

// DecodeSelectedServices returns the service names present in a persisted
// selection, in catalog order. An empty encoding decodes to no services.
func DecodeSelectedServices(encoded string) []string {
	if encoded == "" {
		return nil
	}

	var names []string
	for _, s := range services {
		if strings.Contains(encoded, "["+s.code+"]") {
			names = append(names, s.name)
		}
	}
	return names
}

// WireServiceList reformats a persisted selection into the comma-joined code
// list the carrier expects (e.g., "[04014]:[04510]" -> "04014,04510").
func WireServiceList(encoded string) string {
	encoded = strings.TrimSuffix(encoded, ":")
	if encoded == "" {
		return ""
	}

	var codes []string
	for _, part := range strings.Split(encoded, ":") {
		code := strings.TrimSuffix(strings.TrimPrefix(part, "["), "]")
		if code != "" {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, ",")
}
