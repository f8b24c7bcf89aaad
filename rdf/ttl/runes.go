package ttl

// Character-class tables for the Turtle grammar's PN_CHARS_BASE / PN_CHARS_U
// / PN_CHARS / PN_LOCAL productions, lifted from the reference Unicode
// range tables for this exact grammar (teacher's rune.go) and restructured
// as range-pair slices checked with inRanges.

var pnCharsBaseRanges = []rune{
	'A', 'Z',
	'a', 'z',
	0x00C0, 0x00D6,
	0x00D8, 0x00F6,
	0x00F8, 0x02FF,
	0x0370, 0x037D,
	0x037F, 0x1FFF,
	0x200C, 0x200D,
	0x2070, 0x218F,
	0x2C00, 0x2FEF,
	0x3001, 0xD7FF,
	0xF900, 0xFDCF,
	0xFDF0, 0xFFFD,
	0x10000, 0xEFFFF,
}

var pnCharsURanges = append(append([]rune{}, pnCharsBaseRanges...), '_', '_')

var pnCharsRanges = append(append([]rune{}, pnCharsURanges...),
	'-', '-',
	'0', '9',
	0x00B7, 0x00B7,
	0x0300, 0x036F,
	0x203F, 0x2040,
)

// PN_LOCAL may additionally start with ':' or a digit, and may contain '%'
// (a percent-escape) or '\' (a PN_LOCAL_ESC escape).
var pnLocalFirstRanges = append(append([]rune{}, pnCharsURanges...), ':', ':', '0', '9')

var pnLocalMidRanges = append(append([]rune{}, pnCharsRanges...),
	':', ':',
	'%', '%',
	'\\', '\\',
)

var pnLocalEscChars = map[rune]bool{
	'_': true, '~': true, '.': true, '-': true, '!': true, '$': true,
	'&': true, '\'': true, '(': true, ')': true, '*': true, '+': true,
	',': true, ';': true, '=': true, '/': true, '?': true, '#': true,
	'@': true, '%': true,
}

func inRanges(r rune, tab []rune) bool {
	for i := 0; i < len(tab); i += 2 {
		if r >= tab[i] && r <= tab[i+1] {
			return true
		}
	}
	return false
}

func isPnCharsBase(r rune) bool { return inRanges(r, pnCharsBaseRanges) }
func isPnCharsU(r rune) bool    { return inRanges(r, pnCharsURanges) }
func isPnChars(r rune) bool     { return inRanges(r, pnCharsRanges) }
func isPnLocalFirst(r rune) bool {
	return inRanges(r, pnLocalFirstRanges)
}
func isPnLocalMid(r rune) bool { return inRanges(r, pnLocalMidRanges) }

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isPNLocalEsc(r rune) bool { return pnLocalEscChars[r] }
