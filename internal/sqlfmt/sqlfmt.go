// Package sqlfmt pretty-prints SQL text for human readers.
//
// Format re-indents and re-cases only: every token of the input appears in
// the output unchanged apart from whitespace and keyword casing, so the
// formatted text is semantically identical to the input by construction.
// Quoted literals are preserved verbatim, including their casing.
package sqlfmt

import "strings"

// Options controls formatting.
type Options struct {
	// Indent is the prefix for clause bodies. Defaults to four spaces.
	Indent string
	// Uppercase rewrites keywords outside quoted literals to upper case.
	Uppercase bool
}

// DefaultOptions returns the default formatting options: four-space indent,
// uppercase keywords.
func DefaultOptions() Options {
	return Options{Indent: "    ", Uppercase: true}
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	// spaceBefore records whether the token was separated from the previous
	// one in the input. Inline rendering reproduces exactly that separation.
	spaceBefore bool
}

// keywords rewritten to upper case when Options.Uppercase is set.
var keywords = map[string]bool{
	"select": true, "from": true, "where": true, "group": true, "by": true,
	"having": true, "order": true, "limit": true, "offset": true,
	"join": true, "inner": true, "left": true, "right": true, "full": true,
	"cross": true, "outer": true, "on": true,
	"and": true, "or": true, "not": true, "in": true, "is": true,
	"null": true, "like": true, "between": true, "as": true, "distinct": true,
	"insert": true, "into": true, "values": true, "update": true, "set": true,
	"delete": true, "asc": true, "desc": true, "union": true, "exists": true,
	"count": true, "min": true, "max": true, "sum": true, "avg": true,
}

// Format pretty-prints sql. Top-level clause keywords go on their own line
// with the clause body indented beneath them; joins indent under FROM;
// top-level AND/OR connectors and list commas break lines. Parenthesized
// content (groups, IN lists, subqueries) stays inline.
func Format(sql string, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = "    "
	}

	toks := lex(sql)
	if opts.Uppercase {
		for i, t := range toks {
			if t.kind == tokWord && keywords[strings.ToLower(t.text)] {
				toks[i].text = strings.ToUpper(t.text)
			}
		}
	}

	var lines []string
	var line strings.Builder
	flush := func() {
		if strings.TrimSpace(line.String()) != "" {
			lines = append(lines, strings.TrimRight(line.String(), " "))
		}
		line.Reset()
	}

	depth := 0
	pendingBetween := false

	i := 0
	for i < len(toks) {
		t := toks[i]

		if t.kind == tokWord && depth == 0 {
			if kw, n := clauseKeyword(toks, i); n > 0 {
				flush()
				lines = append(lines, kw)
				line.WriteString(opts.Indent)
				i += n
				continue
			}
			if kw, n := joinKeyword(toks, i); n > 0 {
				flush()
				line.WriteString(opts.Indent + kw)
				i += n
				continue
			}
			// The AND of a BETWEEN stays inline.
			if strings.EqualFold(t.text, "AND") && pendingBetween {
				pendingBetween = false
				writeInline(&line, t)
				i++
				continue
			}
			if strings.EqualFold(t.text, "AND") || strings.EqualFold(t.text, "OR") {
				flush()
				line.WriteString(opts.Indent + t.text)
				i++
				continue
			}
			if strings.EqualFold(t.text, "BETWEEN") {
				pendingBetween = true
			}
		}

		if t.kind == tokComma && depth == 0 {
			line.WriteString(",")
			flush()
			line.WriteString(opts.Indent)
			i++
			continue
		}

		switch t.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		}
		writeInline(&line, t)
		i++
	}
	flush()

	return strings.Join(lines, "\n")
}

// writeInline appends a token to the current line, reproducing the input's
// token separation.
func writeInline(line *strings.Builder, t token) {
	s := line.String()
	atLineStart := s == "" || strings.HasSuffix(s, " ")
	if t.spaceBefore && !atLineStart {
		line.WriteString(" ")
	}
	line.WriteString(t.text)
}

// clauseKeyword reports a top-level clause keyword phrase starting at i and
// the number of tokens it spans, or ("", 0).
func clauseKeyword(toks []token, i int) (string, int) {
	two := map[string]string{
		"group":  "by",
		"order":  "by",
		"insert": "into",
		"delete": "from",
	}
	w := strings.ToLower(toks[i].text)
	if follow, ok := two[w]; ok {
		if i+1 < len(toks) && toks[i+1].kind == tokWord && strings.EqualFold(toks[i+1].text, follow) {
			return toks[i].text + " " + toks[i+1].text, 2
		}
		if w == "delete" {
			return toks[i].text, 1
		}
		return "", 0
	}
	switch w {
	case "select", "from", "where", "having", "limit", "offset", "set", "values", "update":
		return toks[i].text, 1
	}
	return "", 0
}

// joinKeyword reports a join keyword phrase starting at i and the number of
// tokens it spans, or ("", 0).
func joinKeyword(toks []token, i int) (string, int) {
	w := strings.ToLower(toks[i].text)
	if w == "join" {
		return toks[i].text, 1
	}
	switch w {
	case "inner", "left", "right", "full", "cross":
	default:
		return "", 0
	}
	parts := []string{toks[i].text}
	n := 1
	if i+n < len(toks) && toks[i+n].kind == tokWord && strings.EqualFold(toks[i+n].text, "outer") {
		parts = append(parts, toks[i+n].text)
		n++
	}
	if i+n < len(toks) && toks[i+n].kind == tokWord && strings.EqualFold(toks[i+n].text, "join") {
		parts = append(parts, toks[i+n].text)
		n++
		return strings.Join(parts, " "), n
	}
	return "", 0
}

// lex splits sql into tokens, keeping quoted literals intact. Single-quoted
// strings honor the doubled-quote escape; double-quoted identifiers are kept
// verbatim as well.
func lex(sql string) []token {
	var toks []token
	runes := []rune(sql)
	i := 0
	space := false
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			space = true
			i++
		case r == '\'' || r == '"':
			start := i
			quote := r
			i++
			for i < len(runes) {
				if runes[i] == quote {
					if quote == '\'' && i+1 < len(runes) && runes[i+1] == '\'' {
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}
			toks = append(toks, token{kind: tokString, text: string(runes[start:i]), spaceBefore: space})
			space = false
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", spaceBefore: space})
			space = false
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", spaceBefore: space})
			space = false
			i++
		case r == ',':
			toks = append(toks, token{kind: tokComma, text: ",", spaceBefore: space})
			space = false
			i++
		default:
			start := i
			for i < len(runes) {
				r := runes[i]
				if r == ' ' || r == '\t' || r == '\n' || r == '\r' ||
					r == '(' || r == ')' || r == ',' || r == '\'' || r == '"' {
					break
				}
				i++
			}
			toks = append(toks, token{kind: tokWord, text: string(runes[start:i]), spaceBefore: space})
			space = false
		}
	}
	return toks
}
