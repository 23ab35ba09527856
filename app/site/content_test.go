package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	page, err := Load("testdata/product.xml")
	require.NoError(t, err)

	assert.Equal(t, "Refugio Patitas", page.Title)
	assert.Equal(t, "Animal shelter", page.Category)
	assert.Equal(t, "refugio-patitas", page.Slug)
	assert.Equal(t, "Every pet deserves a home", page.ValueProposition)
	assert.Equal(t, "Adopt, foster or donate", page.Subtitle)
	assert.Equal(t, "images/hero-home.png", page.HeroImage)

	require.Len(t, page.Sections, 5)
	kinds := make([]SectionKind, 0, len(page.Sections))
	for _, s := range page.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SectionKind{KindProblem, KindSolution, KindFeatures, KindBenefits, KindCTA}, kinds)

	problem := page.Sections[0]
	assert.Equal(t, "The problem", problem.Title)
	assert.Equal(t, "images/problem-streets.png", problem.Image)
	assert.Equal(t, []string{"Too many strays", "Full shelters"}, problem.Items)

	solution := page.Sections[1]
	assert.Equal(t, "We match pets with families.", solution.Overview)
	assert.Equal(t, []string{"Faster adoptions", "Vet checks for all"}, solution.Items)
	assert.Empty(t, solution.Image)

	features := page.Sections[2]
	assert.Equal(t, []Feature{{Name: "Matching", Benefit: "Right pet, right family"},
		{Name: "Follow-up", Benefit: "Support after adoption"}}, features.Features)

	cta := page.Sections[4]
	assert.Equal(t, "cta", cta.Anchor)
	assert.Equal(t, "Adopt or donate today.", cta.Overview)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("testdata/nope.xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "testdata/nope.xml")
	})

	t.Run("broken xml", func(t *testing.T) {
		_, err := Parse([]byte("<product><meta>"))
		require.Error(t, err)
	})
}

func TestParse_Minimal(t *testing.T) {
	page, err := Parse([]byte(`<product><meta><title>T</title></meta><hero><valueProposition>V</valueProposition></hero></product>`))
	require.NoError(t, err)
	assert.Equal(t, "T", page.Title)
	assert.Empty(t, page.HeroImage)
	assert.Empty(t, page.Sections)
}
