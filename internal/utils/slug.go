package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxSlugLength is the maximum number of runes in a note slug.
const MaxSlugLength = 100

// cyrillicTranslit is the Russian/Ukrainian transliteration applied before
// the generic one. Soft and hard signs are dropped.
var cyrillicTranslit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "j", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch", 'ъ': "",
	'ы': "yi", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g",
}

// Slugify turns an arbitrary title into a URL-safe slug.
//
// Cyrillic is transliterated with cyrillicTranslit ("Новость для теста"
// becomes "novost-dlya-testa"), other scripts by gosimple/slug. The result is
// lower-cased, runs of characters outside [a-z0-9] are collapsed into single
// hyphens, and the output is truncated to [MaxSlugLength] runes.
func Slugify(title string) string {
	title = slug.SubstituteRune(strings.ToLower(title), cyrillicTranslit)
	return truncateRunes(slug.Make(title), MaxSlugLength)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
