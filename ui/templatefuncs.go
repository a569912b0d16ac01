package ui

import(
	"errors"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

func TemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"add": templateAdd,
		"kg": templateKG,                     // {{kg .Range.Lo}} -> "2500"
		"flatten": templateFlatten,
		"dict": templateDict,                 // {{template "foo" dict "Key" "Val" "OtherArgs" . }}
		"link": templateLink,                 // {{link "/report" "site" .Site "rep" "sites"}}
	}
}

func templateAdd(a int, b int) int { return a + b }
func templateKG(x float64) string { return fmt.Sprintf("%.0f", x) }
func templateFlatten(in []string) string { return strings.Join(in, " ") }

// Args are treated as a sequence of keys and vals, and built into a map. Used to let you
// specify parameters for a sub-template.
func templateDict(values ...interface{}) (map[string]interface{}, error) {
	if len(values)%2 != 0 { return nil, errors.New("invalid dict call") }
	dict := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i+=2 {
		key, ok := values[i].(string)
		if !ok { return nil, errors.New("dict keys must be strings") }
		dict[key] = values[i+1]
	}
	return dict, nil
}

// Builds a URL from a path plus keys and vals, as per dict. Vals go through fmt's %v, except
// floats, which are rendered as whole kg.
func templateLink(path string, values ...interface{}) (string, error) {
	if len(values)%2 != 0 { return "", errors.New("invalid link call") }
	v := url.Values{}
	for i := 0; i < len(values); i+=2 {
		key, ok := values[i].(string)
		if !ok { return "", errors.New("link keys must be strings") }
		switch val := values[i+1].(type) {
		case float64: v.Set(key, templateKG(val))
		default:      v.Set(key, fmt.Sprintf("%v", val))
		}
	}
	return path + "?" + v.Encode(), nil
}
