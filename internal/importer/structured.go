package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// parseStructured handles both YAML and JSON (a YAML subset). Sequences are
// flattened, mappings contribute their values in document order, and scalars
// keep their decoded type.
func parseStructured(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var tokens []any
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse structured document: %w", err)
		}
		tokens, err = flatten(&doc, tokens)
		if err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

func flatten(n *yaml.Node, out []any) ([]any, error) {
	var err error
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range n.Content {
			if out, err = flatten(child, out); err != nil {
				return nil, err
			}
		}
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			if out, err = flatten(n.Content[i], out); err != nil {
				return nil, err
			}
		}
	case yaml.AliasNode:
		return flatten(n.Alias, out)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode value at line %d: %w", n.Line, err)
		}
		out = append(out, v)
	}
	return out, nil
}
