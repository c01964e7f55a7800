package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "lemon-chicken-traybake", Slugify("Lemon Chicken Traybake"))
	assert.Equal(t, "mac-n-cheese", Slugify("  Mac 'n' Cheese!! "))
	assert.Equal(t, "beef-and-ale-pie", Slugify("Beef & Ale Pie"))
	assert.Equal(t, "", Slugify("?!"))

	long := Slugify(strings.Repeat("ab ", 40))
	assert.LessOrEqual(t, len(long), 70)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestSlugifyTransliterates(t *testing.T) {
	assert.Equal(t, "creme-brulee", Slugify("Crème Brûlée"))
	assert.Equal(t, "jalapeno-poppers", Slugify("Jalapeño Poppers"))

	fried := Slugify("炒饭")
	assert.NotEmpty(t, fried)
	assert.NotContains(t, fried, "炒")
}
