package gamecode

import (
	"fmt"
	"strings"
)

const documentTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Game</title>
    <style>
%s
    </style>
</head>
<body>
%s
    <script>
%s
    </script>
</body>
</html>
`

// Format assembles three fragments into one HTML5 document, suitable for
// sending back to the model for improvement. Fragments are inserted verbatim;
// callers own any escaping.
func Format(markup, styles, script string) string {
	return strings.TrimSpace(fmt.Sprintf(documentTemplate, styles, markup, script))
}

// FormatSet is Format applied to a FragmentSet.
func FormatSet(f FragmentSet) string {
	return Format(f.Markup, f.Styles, f.Script)
}
