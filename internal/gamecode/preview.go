package gamecode

import "strings"

// RenderPreview builds the inline document loaded into the sandboxed preview
// frame. Unlike Format it carries no doctype or meta tags.
func RenderPreview(f FragmentSet) string {
	var sb strings.Builder
	sb.WriteString("<html>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString("    <style>" + f.Styles + "</style>\n")
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    " + f.Markup + "\n")
	sb.WriteString("    <script>" + f.Script + "</script>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</html>")
	return sb.String()
}
