package batchfile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML reads sections from a top-level mapping. The DEFAULT key holds
// the defaults, every other key is a section. The node tree is used instead
// of a map so declaration order survives.
func parseYAML(data []byte, doc *Document) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil // empty document
	}

	top := resolveAlias(root.Content[0])
	if top.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: top level must be a mapping of sections", top.Line)
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		name := top.Content[i].Value
		body := resolveAlias(top.Content[i+1])

		if name != DefaultSection {
			doc.addSection(name)
		}

		// "foo:" with nothing below is an empty section
		if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: section %q must be a mapping of options", body.Line, name)
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key := body.Content[j].Value
			value, err := yamlScalar(resolveAlias(body.Content[j+1]))
			if err != nil {
				return fmt.Errorf("key %q in section %q: %w", key, name, err)
			}
			doc.set(name, key, value)
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// yamlScalar returns the scalar text as written. A null value is empty.
func yamlScalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: value must be a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		return "", nil
	}
	return n.Value, nil
}
