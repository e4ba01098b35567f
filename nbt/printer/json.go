package printer

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/joshuapare/nbtkit/gomap"
	"github.com/joshuapare/nbtkit/nbt"
)

// printJSON emits the gomap projection of the tree as indented JSON. The
// projection is lossy by design: parent links, list element type
// declarations, and duplicate-name ordering do not survive.
func (p *Printer) printJSON(root *nbt.Tag) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wrap(root)); err != nil {
		return fmt.Errorf("printer: json: %w", err)
	}
	return nil
}

// printYAML emits the same projection as YAML.
func (p *Printer) printYAML(root *nbt.Tag) error {
	out, err := yaml.Marshal(wrap(root))
	if err != nil {
		return fmt.Errorf("printer: yaml: %w", err)
	}
	if _, err := p.w.Write(out); err != nil {
		return err
	}
	return nil
}

// wrap keys the projection by the root's name so it survives the flattening.
func wrap(root *nbt.Tag) any {
	if root == nil {
		return nil
	}
	if root.Name() == "" {
		return gomap.FromTag(root)
	}
	return map[string]any{root.Name(): gomap.FromTag(root)}
}
