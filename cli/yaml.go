package cli

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nion-lang/nion"
)

// yamlStack converts a stack to a YAML sequence. Integers and floats become
// YAML numbers; other numbers are written in their canonical form as strings.
func yamlStack(stack []any) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range stack {
		n := &yaml.Node{Kind: yaml.ScalarNode}
		switch nion.TypeOf(v) {
		case "integer":
			n.Tag, n.Value = "!!int", nion.Marshal(v)
		case "float":
			n.Tag, n.Value = "!!float", nion.Marshal(v)
		case "string":
			n.Tag, n.Value = "!!str", v.(string)
		default:
			n.Tag, n.Value = "!!str", nion.Marshal(v)
		}
		seq.Content = append(seq.Content, n)
	}
	return seq
}

func encodeYAML(w io.Writer, stack []any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlStack(stack)); err != nil {
		return err
	}
	return enc.Close()
}
