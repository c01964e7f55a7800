package recipe

import (
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugLength = 70

// Slugify transliterates s to ASCII and joins its words with single hyphens.
func Slugify(s string) string {
	out := slug.MakeLang(s, "en")
	if len(out) > maxSlugLength {
		out = strings.TrimRight(out[:maxSlugLength], "-_")
	}
	return out
}
