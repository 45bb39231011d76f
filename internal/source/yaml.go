// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/tblsel/internal/table"
)

// DecodeYAML decodes a YAML table. The document is walked as nodes rather
// than unmarshaled into maps so that key order survives.
func DecodeYAML(data []byte) (*table.Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	node := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		node = doc.Content[0]
	}
	node = resolve(node)

	switch node.Kind {
	case yaml.SequenceNode:
		return yamlRecords(node)
	case yaml.MappingNode:
		return yamlColumns(node)
	default:
		return nil, ErrTopLevel(yamlKind(node))
	}
}

func yamlRecords(node *yaml.Node) (*table.Table, error) {
	b := table.NewBuilder()

	for i, rec := range node.Content {
		rec = resolve(rec)
		if rec.Kind != yaml.MappingNode {
			return nil, ErrNotRecord(i, yamlKind(rec))
		}

		names := make([]string, 0, len(rec.Content)/2)
		values := make([]any, 0, len(rec.Content)/2)
		for j := 0; j+1 < len(rec.Content); j += 2 {
			v, err := yamlValue(rec.Content[j+1])
			if err != nil {
				return nil, err
			}
			names = append(names, rec.Content[j].Value)
			values = append(values, v)
		}

		if err := b.AppendRecord(names, values); err != nil {
			return nil, err
		}
	}

	return b.Table(), nil
}

func yamlColumns(node *yaml.Node) (*table.Table, error) {
	columns := make([]table.Column, 0, len(node.Content)/2)

	for j := 0; j+1 < len(node.Content); j += 2 {
		name := node.Content[j].Value
		list := resolve(node.Content[j+1])
		if list.Kind != yaml.SequenceNode {
			return nil, ErrNotColumn(name, yamlKind(list))
		}

		values := make([]any, len(list.Content))
		for i, item := range list.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		columns = append(columns, table.Column{Name: name, Values: values})
	}

	return table.New(columns...)
}

// yamlValue decodes a single cell, widening int to int64 to match the JSON
// and CSV decoders.
func yamlValue(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid yaml value at line %d: %w", n.Line, err)
	}
	if i, ok := v.(int); ok {
		return int64(i), nil
	}
	return v, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func yamlKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case 0:
		return "empty document"
	}
	return "node"
}
