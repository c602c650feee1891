package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docnav/internal/models"
)

var allCategories = []models.Category{
	models.CategoryMIGConfig,
	models.CategoryNVLink,
	models.CategoryTensorRT,
	models.CategoryNeMo,
	models.CategoryTriton,
	models.CategoryCUDAProfiling,
	models.CategoryCUDAGeneral,
	models.CategoryGeneric,
}

func TestSourcesCoverEveryCategory(t *testing.T) {
	for _, cat := range allCategories {
		refs := Sources(cat)
		require.NotEmpty(t, refs, "category %s", cat)
		for _, ref := range refs {
			assert.NotEmpty(t, ref.Title, "category %s", cat)
			assert.True(t, strings.HasPrefix(ref.URL, "https://"), "category %s url %s", cat, ref.URL)
			assert.Greater(t, ref.Relevance, 0.0, "category %s", cat)
			assert.LessOrEqual(t, ref.Relevance, 1.0, "category %s", cat)
		}
	}
}

func TestSourcesUnknownCategoryFallsBackToGeneric(t *testing.T) {
	refs := Sources(models.Category("no_such_category"))
	assert.Equal(t, Sources(models.CategoryGeneric), refs)
}

func TestExamplesNeverNil(t *testing.T) {
	for _, cat := range allCategories {
		assert.NotNil(t, Examples(cat), "category %s", cat)
	}
	assert.NotNil(t, Examples(models.Category("no_such_category")))
	assert.Empty(t, Examples(models.Category("no_such_category")))
}

func TestExamplesPointAtOfficialHosting(t *testing.T) {
	for _, cat := range allCategories {
		for _, ex := range Examples(cat) {
			assert.NotEmpty(t, ex.Name)
			assert.NotEmpty(t, ex.Repo)
			assert.True(t, strings.HasPrefix(ex.URL, "https://github.com/"), "example %s", ex.Name)
		}
	}
}

func TestRenderTemplateNeverEmpty(t *testing.T) {
	for _, cat := range allCategories {
		out := RenderTemplate(cat, "some question")
		assert.NotEmpty(t, strings.TrimSpace(out), "category %s", cat)
	}
	out := RenderTemplate(models.Category("no_such_category"), "some question")
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestRenderTemplateMIGCommands(t *testing.T) {
	out := RenderTemplate(models.CategoryMIGConfig, "how do I enable mig?")
	assert.Contains(t, out, "sudo nvidia-smi -i 0 -mig 1")
	assert.Contains(t, out, "nvidia-smi mig -cgi")
}

func TestRenderTemplateGenericRestatesQuery(t *testing.T) {
	out := RenderTemplate(models.CategoryGeneric, "how do I bake bread?")
	assert.Contains(t, out, "how do I bake bread?")
}
