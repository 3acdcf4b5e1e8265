package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsDesk(t *testing.T) {
	d, err := NewsDesk()
	require.NoError(t, err)

	require.Len(t, d.Authors, 2)
	require.Len(t, d.Magazines, 2)
	require.Len(t, d.Articles, 5)
	assert.Equal(t, 5, d.Registry.ArticleCount())

	ada := d.Authors["Ada"]
	tech := d.Magazines["Tech Weekly"]
	require.NotNil(t, ada)
	require.NotNil(t, tech)

	assert.Equal(t, []string{"Technology"}, ada.TopicAreas())
	assert.Contains(t, tech.ContributingAuthors(), ada)
	assert.Same(t, tech, d.Registry.TopPublisher())
}

func TestCatalog_Build_UnknownReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown author",
			doc: `
magazines:
  - name: Tech Weekly
    category: Technology
articles:
  - author: Nobody
    magazine: Tech Weekly
    title: The Future of AI
`,
		},
		{
			name: "unknown magazine",
			doc: `
authors:
  - name: Ada
articles:
  - author: Ada
    magazine: Nowhere
    title: The Future of AI
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseCatalog(tt.doc)
			require.NoError(t, err)

			_, err = catalog.Build()
			assert.Error(t, err)
		})
	}
}

func TestCatalog_Build_InvalidTitle(t *testing.T) {
	catalog, err := ParseCatalog(`
authors:
  - name: Ada
magazines:
  - name: Tech Weekly
    category: Technology
articles:
  - author: Ada
    magazine: Tech Weekly
    title: AI
`)
	require.NoError(t, err)

	_, err = catalog.Build()
	assert.Error(t, err)
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := ParseCatalog("authors: [notamap")
	assert.Error(t, err)
}
