// Package translit folds accented Latin characters to their ASCII base letters.
//
// Fold works rune by rune against lookup tables. The Basic table is the
// default and covers the French accents (é, è, ê, ë, ç, à, â, ä, ô, ö, î, ï,
// ù, û, ü and their uppercase forms). Every other character passes through
// unchanged, so callers decide what to do with it.
//
//	translit.Fold("Hélène Dûpont") // "Helene Dupont"
//	translit.Fold("Ñuño")          // "Ñuño"
//
// WithExtended adds a wider European table and strips remaining combining
// marks through golang.org/x/text normalization:
//
//	translit.Fold("Ñuño Jiří", translit.WithExtended()) // "Nuno Jiri"
//
// All functions are stateless and safe for concurrent use.
package translit
