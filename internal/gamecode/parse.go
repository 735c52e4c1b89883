package gamecode

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// scriptSeparator joins consecutive executable scripts.
const scriptSeparator = "\n\n"

// Precompiled patterns over the raw document text. The optional attribute
// group requires whitespace after the tag name so that <header> is never
// mistaken for <head>.
var (
	styleBlock   = regexp.MustCompile(`(?is)<style(?:\s[^>]*)?>(.*?)</style>`)
	scriptBlock  = regexp.MustCompile(`(?is)<script(\s[^>]*)?>(.*?)</script>`)
	bodyBlock    = regexp.MustCompile(`(?is)<body(?:\s[^>]*)?>(.*?)</body>`)
	headBlock    = regexp.MustCompile(`(?is)<head(?:\s[^>]*)?>.*?</head>`)
	htmlOpenTag  = regexp.MustCompile(`(?i)<html(?:\s[^>]*)?>`)
	htmlCloseTag = regexp.MustCompile(`(?i)</html>`)
)

// dataScriptTypes are script types that carry payload rather than code.
var dataScriptTypes = map[string]struct{}{
	"application/json":    {},
	"application/ld+json": {},
	"text/template":       {},
}

// Parse splits a combined document into markup, styles and script. It never
// fails: anything it cannot recognise yields empty fragments.
func Parse(document string) FragmentSet {
	if document == "" {
		return FragmentSet{}
	}

	var f FragmentSet
	if m := styleBlock.FindStringSubmatch(document); m != nil {
		f.Styles = strings.TrimSpace(m[1])
	}
	f.Script = strings.Join(executableScripts(document), scriptSeparator)
	f.Markup = extractMarkup(document)
	return f
}

// executableScripts returns the trimmed bodies of all non-data scripts in
// document order. Elements with no inner text at all are skipped.
func executableScripts(document string) []string {
	var parts []string
	for _, m := range scriptBlock.FindAllStringSubmatch(document, -1) {
		if isDataScript(m[1]) || m[2] == "" {
			continue
		}
		parts = append(parts, strings.TrimSpace(m[2]))
	}
	return parts
}

func extractMarkup(document string) string {
	if m := bodyBlock.FindStringSubmatch(document); m != nil && m[1] != "" {
		markup := stripExecutableScripts(m[1])
		markup = styleBlock.ReplaceAllString(markup, "")
		return strings.TrimSpace(markup)
	}

	// No usable <body>: best effort over the whole input.
	markup := removeFirst(styleBlock, document)
	markup = stripExecutableScripts(markup)
	markup = removeFirst(headBlock, markup)
	markup = removeFirst(htmlOpenTag, markup)
	markup = removeFirst(htmlCloseTag, markup)
	return strings.TrimSpace(markup)
}

// stripExecutableScripts removes every script element except data scripts.
func stripExecutableScripts(s string) string {
	return scriptBlock.ReplaceAllStringFunc(s, func(element string) string {
		m := scriptBlock.FindStringSubmatch(element)
		if m != nil && isDataScript(m[1]) {
			return element
		}
		return ""
	})
}

// isDataScript reports whether the raw attribute text of a <script> tag
// declares one of the data script types. Attributes are read with the HTML
// tokenizer so quoting style does not matter.
func isDataScript(attrs string) bool {
	if strings.TrimSpace(attrs) == "" {
		return false
	}

	z := html.NewTokenizer(strings.NewReader("<script" + attrs + ">"))
	switch z.Next() {
	case html.StartTagToken, html.SelfClosingTagToken:
	default:
		return false
	}

	for _, attr := range z.Token().Attr {
		if attr.Key != "type" {
			continue
		}
		_, ok := dataScriptTypes[strings.ToLower(strings.TrimSpace(attr.Val))]
		return ok
	}
	return false
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
