package colfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads one YAML document from r. A mapping becomes a key/value
// source in document order, a sequence becomes a list source, and a scalar
// becomes a one-value list. Nested collections are rendered inline in flow
// style. Empty input yields an empty list source.
func DecodeYAML(r io.Reader) (Source, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Source{}, nil
		}
		return Source{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	node := deref(&doc)
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Source{}, nil
		}
		node = deref(node.Content[0])
	}
	switch node.Kind {
	case yaml.MappingNode:
		kvs := make([]KeyValue, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			kvs = append(kvs, KeyValue{
				Key:   nodeString(node.Content[i]),
				Value: nodeString(node.Content[i+1]),
			})
		}
		return Source{pairs: true, kvs: kvs}, nil
	case yaml.SequenceNode:
		values := make([]string, len(node.Content))
		for i, n := range node.Content {
			values[i] = nodeString(n)
		}
		return Source{values: values}, nil
	default:
		return Source{values: []string{nodeString(node)}}, nil
	}
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func nodeString(n *yaml.Node) string {
	n = deref(n)
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	flow := *n
	flow.Style |= yaml.FlowStyle
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return n.Value
	}
	return strings.TrimSpace(string(out))
}
