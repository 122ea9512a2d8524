package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	items, err := Defaults()
	require.NoError(t, err)
	require.Len(t, items, 4)

	keys := make([]string, 0, len(items))
	for _, d := range items {
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []string{"header-basic", "hero-banner", "announcement-list", "contact-card"}, keys)

	hero := items[1]
	assert.Equal(t, "Hero Banner", hero.ComponentName)
	assert.Equal(t, "hero", hero.ComponentType)
	assert.Equal(t, map[string]string{"title": "string", "subtitle": "string", "imageUrl": "string"}, hero.PropsSchema)
	assert.Equal(t, "string[]", items[0].PropsSchema["navLinks"])
}

func TestParse(t *testing.T) {
	t.Run("duplicate key", func(t *testing.T) {
		_, err := Parse([]byte(`
components:
  - {key: a, componentName: A, componentType: x}
  - {key: a, componentName: B, componentType: x}
`))
		assert.ErrorContains(t, err, "duplicate key")
	})

	t.Run("missing type", func(t *testing.T) {
		_, err := Parse([]byte(`
components:
  - {key: a, componentName: A}
`))
		assert.ErrorContains(t, err, "componentType is required")
	})

	t.Run("props default to empty", func(t *testing.T) {
		items, err := Parse([]byte(`
components:
  - {key: a, componentName: A, componentType: x}
`))
		require.NoError(t, err)
		assert.NotNil(t, items[0].PropsSchema)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte("components: ["))
		assert.Error(t, err)
	})
}
