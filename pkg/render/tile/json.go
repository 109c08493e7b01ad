package tile

import (
	"encoding/json"

	"github.com/matzehuels/doodle/pkg/compose"
)

// Document is the JSON export format for a composed tile. It carries the
// element list with enough context (tile size) for external renderers.
type Document struct {
	TileSize int               `json:"tile_size"`
	Elements []compose.Element `json:"elements"`
}

// MarshalJSON serializes the element list as an indented JSON document.
func MarshalJSON(elements []compose.Element, size int) ([]byte, error) {
	return json.MarshalIndent(Document{TileSize: size, Elements: elements}, "", "  ")
}

// UnmarshalJSON parses a JSON tile document.
func UnmarshalJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
