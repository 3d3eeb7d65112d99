package batchfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// parseTOML reads sections from TOML tables. Keys outside any table and keys
// of the DEFAULT table are defaults. MetaData.Keys gives declaration order.
func parseTOML(data []byte, doc *Document) error {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}

	for _, key := range md.Keys() {
		switch len(key) {
		case 1:
			name := key[0]
			if _, isTable := raw[name].(map[string]any); isTable {
				if name != DefaultSection {
					doc.addSection(name)
				}
				continue
			}
			value, err := tomlScalar(raw[name])
			if err != nil {
				return fmt.Errorf("key %q: %w", name, err)
			}
			doc.set(DefaultSection, name, value)
		case 2:
			table, ok := raw[key[0]].(map[string]any)
			if !ok {
				return fmt.Errorf("key %q: not a table", key.String())
			}
			value, err := tomlScalar(table[key[1]])
			if err != nil {
				return fmt.Errorf("key %q: %w", key.String(), err)
			}
			doc.set(key[0], key[1], value)
		default:
			return fmt.Errorf("key %q: nested tables are not supported", strings.Join(key, "."))
		}
	}
	return nil
}

// tomlScalar renders a decoded TOML scalar as the string passed on the
// command line.
func tomlScalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case map[string]any, []any, []map[string]any:
		return "", fmt.Errorf("value must be a string, number or boolean")
	default:
		return fmt.Sprint(v), nil
	}
}
