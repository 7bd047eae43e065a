package domain

import "regexp"

// anonymousName is reported when a detection pattern matches but its name
// group captured nothing.
const anonymousName = "anonymous"

// pattern pairs a detection regexp with the capture group holding the
// function name. The patterns are heuristics, not a grammar: they flag lines
// that look like function declarations in TypeScript-style sources.
type pattern struct {
	re        *regexp.Regexp
	nameGroup int
}

// detectionPatterns is tried in order for every line; the first match wins
// and a line produces at most one candidate. The order is part of the tool's
// observable behavior and must not be rearranged.
var detectionPatterns = []pattern{
	// function keyword declarations: `export async function foo(`
	{regexp.MustCompile(`^\s*(export\s+)?(async\s+)?function\s+(\w+)`), 3},
	// function values assigned to names: `foo = async function`
	{regexp.MustCompile(`^\s*(export\s+)?(async\s+)?(\w+)\s*[:=]\s*(async\s+)?function`), 3},
	// class methods with access modifiers: `private async foo(`
	{regexp.MustCompile(`^\s*(public|private|protected)\s+(async\s+)?(\w+)\s*\(`), 3},
	// shorthand methods / assigned bodies: `foo(a, b): {` or `foo() = {`
	{regexp.MustCompile(`^\s*(async\s+)?(\w+)\s*\([^)]*\)\s*[:=]\s*\{`), 2},
	// arrow functions with braced bodies: `foo = () => {`
	{regexp.MustCompile(`^\s*(async\s+)?(\w+)\s*\([^)]*\)\s*=>\s*\{`), 2},
	// object-literal function properties: `foo: function`
	{regexp.MustCompile(`^\s*(\w+)\s*:\s*(async\s+)?function`), 1},
}

// matchFunctionStart tests a single line against the detection patterns.
// It returns the extracted function name and true when a pattern matched.
func matchFunctionStart(line string) (string, bool) {
	for _, p := range detectionPatterns {
		groups := p.re.FindStringSubmatch(line)
		if groups == nil {
			continue
		}

		name := groups[p.nameGroup]
		if name == "" {
			name = anonymousName
		}

		return name, true
	}

	return "", false
}
