package format

import (
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/forrestthewoods/fts-depends/pkg/dependency"
)

// RenderJSON renders the tree as an indented JSON document.
func RenderJSON(root *dependency.Node) (string, error) {
	var json = jsoniter.ConfigDefault
	j, err := json.MarshalIndent(root, "", strings.Repeat(" ", 2))
	if err != nil {
		return "", err
	}
	return string(j) + "\n", nil
}
