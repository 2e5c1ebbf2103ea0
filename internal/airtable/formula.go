package airtable

import "strings"

// Formula is an Airtable formula expression used with filterByFormula.
type Formula string

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote renders s as a single-quoted formula string literal. Backslashes are
// escaped before quotes, so no input can close the literal early.
func Quote(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

// Field renders a field reference. Field names come from configuration and
// code, never from requests; a closing brace cannot be escaped inside a
// reference and is dropped.
func Field(name string) string {
	return "{" + strings.ReplaceAll(name, "}", "") + "}"
}

// Eq matches rows whose field equals value exactly.
func Eq(field, value string) Formula {
	return Formula(Field(field) + "=" + Quote(value))
}

// And joins conditions with AND(). A single condition is returned as is.
func And(conds ...Formula) Formula {
	if len(conds) == 1 {
		return conds[0]
	}
	parts := make([]string, len(conds))
	for i, c := range conds {
		parts[i] = string(c)
	}
	return Formula("AND(" + strings.Join(parts, ", ") + ")")
}
