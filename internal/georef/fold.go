package georef

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after NFD decomposition, turning
// "Uíge" into "Uige".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldKey normalizes a display name for lookup: diacritics stripped,
// lowercased, internal whitespace collapsed to single underscores.
func foldKey(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), "_")
}

// canonicalID uppercases and underscores an identifier so "luanda" and
// "lunda norte" match the table's LUANDA and LUNDA_NORTE keys.
func canonicalID(id string) string {
	folded, _, err := transform.String(stripMarks, id)
	if err != nil {
		folded = id
	}
	folded = strings.ToUpper(strings.TrimSpace(folded))
	return strings.Join(strings.Fields(folded), "_")
}
