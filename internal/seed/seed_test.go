package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/headz-api/internal/domain/hairstyle"
)

func TestCatalog_Sizes(t *testing.T) {
	assert.Len(t, categories, 6)
	assert.Len(t, hairstyles, 20)
}

func TestCatalog_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, h := range hairstyles {
		assert.False(t, seen[h.Name], "duplicate hairstyle %q", h.Name)
		seen[h.Name] = true
	}

	seen = map[string]bool{}
	for _, c := range categories {
		assert.False(t, seen[c.Name], "duplicate category %q", c.Name)
		seen[c.Name] = true
	}
}

func TestCatalog_EveryStyleMapsToASeededCategory(t *testing.T) {
	names := map[string]bool{}
	for _, c := range categories {
		names[c.Name] = true
	}

	for _, h := range hairstyles {
		assert.True(t, names[categoryFor(h.Gender)], h.Name)

		_, err := domain.ParseGender(string(h.Gender))
		assert.NoError(t, err, h.Name)
		_, err = domain.ParseLength(string(h.Length))
		assert.NoError(t, err, h.Name)

		assert.Contains(t, h.ImageURL, "https://images.unsplash.com/")
	}
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, CategoryMens, categoryFor(domain.GenderMale))
	assert.Equal(t, CategoryWomens, categoryFor(domain.GenderFemale))
	assert.Equal(t, CategoryUnisex, categoryFor(domain.GenderUnisex))
}
