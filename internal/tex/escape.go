package tex

import "strings"

// replacement is one (pattern, replacement) pair. The substitution tables
// are ordered slices rather than maps: the order pairs are listed in is
// part of the output contract and must survive refactoring.
type replacement struct {
	from string
	to   string
}

// structuralChars maps LaTeX control characters to their literal-safe
// commands. The table is applied in a single simultaneous pass, so a
// backslash inserted by one replacement is never consumed by another.
var structuralChars = []replacement{
	{"&", `\&`},
	{"%", `\%`},
	{"#", `\#`},
	{"_", `\_`},
	{"{", `\{`},
	{"}", `\}`},
	{"~", `\textasciitilde{}`},
	{"^", `\textasciicircum{}`},
	{`\`, `\textbackslash{}`},
	{"$", `\$`},
}

// polishChars transliterates Polish letters to LaTeX accent commands.
var polishChars = []replacement{
	{"ą", `\k{a}`},
	{"ć", `\'c`},
	{"ę", `\k{e}`},
	{"ł", `\l{}`},
	{"ń", `\'n`},
	{"ó", `\'o`},
	{"ś", `\'s`},
	{"ź", `\'z`},
	{"ż", `\.z`},
	{"Ą", `\k{A}`},
	{"Ć", `\'C`},
	{"Ę", `\k{E}`},
	{"Ł", `\L{}`},
	{"Ń", `\'N`},
	{"Ó", `\'O`},
	{"Ś", `\'S`},
	{"Ź", `\'Z`},
	{"Ż", `\.Z`},
}

// scientificChars rewrites scientific Unicode symbols as inline math.
// These run after structural escaping, so the dollar signs they insert
// stay intact.
var scientificChars = []replacement{
	{"μ", `$\mu$`},
	{"±", `$\pm$`},
	{"°", `$^{\circ}$`},
	{"≈", `$\approx$`},
	{"≥", `$\geq$`},
	{"≤", `$\leq$`},
	{"⁻", `$^{-}$`},
	{"¹", `$^{1}$`},
	{"²", `$^{2}$`},
	{"³", `$^{3}$`},
	{"⁴", `$^{4}$`},
	{"⁵", `$^{5}$`},
	{"⁶", `$^{6}$`},
	{"⁷", `$^{7}$`},
	{"⁸", `$^{8}$`},
	{"⁹", `$^{9}$`},
	{"⁰", `$^{0}$`},
	{"₁", `$_{1}$`},
	{"₂", `$_{2}$`},
	{"₃", `$_{3}$`},
	{"₄", `$_{4}$`},
}

func newReplacer(pairs []replacement) *strings.Replacer {
	oldnew := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		oldnew = append(oldnew, p.from, p.to)
	}
	return strings.NewReplacer(oldnew...)
}

var (
	structuralReplacer = newReplacer(structuralChars)
	polishReplacer     = newReplacer(polishChars)
	scientificReplacer = newReplacer(scientificChars)
)
