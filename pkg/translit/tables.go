package translit

// Basic covers the accents found in French given names and surnames.
var Basic = Table{
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'ç': 'c',
	'Ç': 'C',
	'à': 'a', 'â': 'a', 'ä': 'a',
	'À': 'A', 'Â': 'A', 'Ä': 'A',
	'ô': 'o', 'ö': 'o',
	'Ô': 'O', 'Ö': 'O',
	'î': 'i', 'ï': 'i',
	'Î': 'I', 'Ï': 'I',
	'ù': 'u', 'û': 'u', 'ü': 'u',
	'Ù': 'U', 'Û': 'U', 'Ü': 'U',
}

// Extended maps common Latin diacritics from other European languages,
// including letters that have no Unicode decomposition.
// Not exhaustive for all Unicode ranges.
var Extended = Table{
	// a/A
	'á': 'a', 'ã': 'a', 'å': 'a', 'ā': 'a', 'ă': 'a', 'ą': 'a',
	'Á': 'A', 'Ã': 'A', 'Å': 'A', 'Ā': 'A', 'Ă': 'A', 'Ą': 'A',
	// c/C
	'ć': 'c', 'č': 'c',
	'Ć': 'C', 'Č': 'C',
	// d/D
	'đ': 'd', 'ď': 'd',
	'Đ': 'D', 'Ď': 'D',
	// e/E
	'ē': 'e', 'ė': 'e', 'ę': 'e', 'ě': 'e',
	'Ē': 'E', 'Ė': 'E', 'Ę': 'E', 'Ě': 'E',
	// i/I
	'ì': 'i', 'í': 'i', 'ī': 'i', 'į': 'i',
	'Ì': 'I', 'Í': 'I', 'Ī': 'I', 'Į': 'I',
	// l/L
	'ł': 'l',
	'Ł': 'L',
	// n/N
	'ñ': 'n', 'ń': 'n', 'ň': 'n',
	'Ñ': 'N', 'Ń': 'N', 'Ň': 'N',
	// o/O
	'ò': 'o', 'ó': 'o', 'õ': 'o', 'ø': 'o', 'ō': 'o',
	'Ò': 'O', 'Ó': 'O', 'Õ': 'O', 'Ø': 'O', 'Ō': 'O',
	// r/R
	'ř': 'r',
	'Ř': 'R',
	// s/S
	'ś': 's', 'š': 's', 'ș': 's',
	'Ś': 'S', 'Š': 'S', 'Ș': 'S',
	// t/T
	'ť': 't', 'ț': 't',
	'Ť': 'T', 'Ț': 'T',
	// u/U
	'ú': 'u', 'ū': 'u', 'ů': 'u', 'ų': 'u',
	'Ú': 'U', 'Ū': 'U', 'Ů': 'U', 'Ų': 'U',
	// y/Y
	'ý': 'y', 'ÿ': 'y',
	'Ý': 'Y', 'Ÿ': 'Y',
	// z/Z
	'ź': 'z', 'ž': 'z', 'ż': 'z',
	'Ź': 'Z', 'Ž': 'Z', 'Ż': 'Z',
	// ligatures fold to their first letter
	'æ': 'a', 'Æ': 'A',
	'œ': 'o', 'Œ': 'O',
	'ß': 's',
}
