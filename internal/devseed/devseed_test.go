package devseed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataetica/dataetica-api/internal/domain/model"
)

func TestSeedCategoriesSlugifyCleanly(t *testing.T) {
	seen := make(map[string]string, len(categories))
	for _, c := range categories {
		slug := model.Slugify(c.name)
		require.NotEmpty(t, slug, "category %q must produce a slug", c.name)
		if prev, dup := seen[slug]; dup {
			t.Fatalf("categories %q and %q collide on slug %q", prev, c.name, slug)
		}
		seen[slug] = c.name
		assert.NotEmpty(t, c.description)
	}
}
