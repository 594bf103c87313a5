package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesAreTheClosedSet(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, CategoryCount)
	for i, c := range cats {
		assert.Equal(t, i+1, c.Index())
		assert.True(t, c.Valid())
	}
	assert.False(t, Category(CategoryCount).Valid())
	assert.Equal(t, "CATEGORY_12", Category(12).String())
}

func TestCategoryFromIndex(t *testing.T) {
	c, ok := CategoryFromIndex(1)
	assert.True(t, ok)
	assert.Equal(t, Aces, c)

	c, ok = CategoryFromIndex(12)
	assert.True(t, ok)
	assert.Equal(t, Chance, c)

	_, ok = CategoryFromIndex(0)
	assert.False(t, ok)
	_, ok = CategoryFromIndex(13)
	assert.False(t, ok)
}

func TestCategoryFromKey(t *testing.T) {
	for _, c := range Categories() {
		got, ok := CategoryFromKey(c.Key())
		assert.True(t, ok, c.Key())
		assert.Equal(t, c, got)
	}

	_, ok := CategoryFromKey("Yacht")
	assert.False(t, ok, "keys are case sensitive")
	_, ok = CategoryFromKey("")
	assert.False(t, ok)
}
