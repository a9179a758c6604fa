package format

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/forrestthewoods/fts-depends/errors"
	"github.com/forrestthewoods/fts-depends/pkg/dependency"
)

func sampleTree() *dependency.Node {
	return &dependency.Node{
		Name:     "app.exe",
		Location: "/projects/app/app.exe",
		Kind:     dependency.KindResolved,
		Children: []*dependency.Node{
			{
				Name:     "mylib.dll",
				Location: "/projects/app/mylib.dll",
				Kind:     dependency.KindResolved,
				Children: []*dependency.Node{
					{
						Name:     "shared.dll",
						Location: "/projects/app/shared.dll",
						Kind:     dependency.KindResolved,
					},
				},
			},
			{Name: "missing.dll", Kind: dependency.KindNotFound},
			{
				Name:     "broken.dll",
				Location: "/projects/app/broken.dll",
				Kind:     dependency.KindError,
				Err:      "exec failed",
			},
			{
				Name:     "shared.dll",
				Location: "/projects/app/shared.dll",
				Kind:     dependency.KindReference,
			},
		},
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleTree(), Options{})

	assert.Contains(t, out, headerDependency)
	assert.Contains(t, out, headerLocation)
	assert.Contains(t, out, "app.exe")
	assert.Contains(t, out, "/projects/app/mylib.dll")
	assert.Contains(t, out, notFoundMarker)
	assert.Contains(t, out, "Error: exec failed")
	assert.Contains(t, out, referenceMarker+"/projects/app/shared.dll")
}

func TestRenderTableRowOrderIsDepthFirst(t *testing.T) {
	out := RenderTable(sampleTree(), Options{})

	// mylib.dll's subtree comes before its missing sibling.
	mylib := strings.Index(out, "mylib.dll")
	shared := strings.Index(out, "shared.dll")
	missing := strings.Index(out, "missing.dll")
	assert.True(t, mylib < shared)
	assert.True(t, shared < missing)
}

func TestRenderTree(t *testing.T) {
	out := RenderTree(sampleTree(), Options{})

	assert.Contains(t, out, "app.exe")
	assert.Contains(t, out, "mylib.dll")
	assert.Contains(t, out, "missing.dll "+notFoundMarker)
	assert.Contains(t, out, "broken.dll (report unavailable: exec failed)")
	assert.Contains(t, out, "shared.dll (previously resolved)")
	// Branch guides from lipgloss.
	assert.Contains(t, out, "├──")
	assert.Contains(t, out, "└──")
}

func TestRenderJSON(t *testing.T) {
	out, err := RenderJSON(sampleTree())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "app.exe", decoded["name"])
	assert.Equal(t, "resolved", decoded["kind"])

	children, ok := decoded["children"].([]interface{})
	require.True(t, ok)
	require.Len(t, children, 4)

	missing := children[1].(map[string]interface{})
	assert.Equal(t, "not-found", missing["kind"])
	_, hasLocation := missing["location"]
	assert.False(t, hasLocation)
}

func TestRenderDispatch(t *testing.T) {
	root := sampleTree()

	for _, format := range []string{"", "table", "tree", "json"} {
		out, err := Render(root, format, Options{})
		assert.NoError(t, err, format)
		assert.NotEmpty(t, out, format)
	}

	_, err := Render(root, "yaml", Options{})
	assert.True(t, errors.Is(err, errUtils.ErrInvalidFormat))
}
