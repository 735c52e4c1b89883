package gamecode_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"whalestreet_ai_server/internal/gamecode"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("returns empty fragments for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, gamecode.FragmentSet{}, gamecode.Parse(""))
		assert.True(t, gamecode.Parse("").IsEmpty())
	})

	t.Run("extracts first style and body markup", func(t *testing.T) {
		t.Parallel()

		doc := "<html><head><style>.x{color:red}</style></head><body><div>Hi</div></body></html>"

		got := gamecode.Parse(doc)

		assert.Equal(t, ".x{color:red}", got.Styles)
		assert.Equal(t, "<div>Hi</div>", got.Markup)
		assert.Empty(t, got.Script)
	})

	t.Run("excludes json data scripts", func(t *testing.T) {
		t.Parallel()

		doc := `<body><script type="application/json">{"a":1}</script><script>console.log(1)</script></body>`

		got := gamecode.Parse(doc)

		assert.Equal(t, "console.log(1)", got.Script)
		assert.Equal(t, `<script type="application/json">{"a":1}</script>`, got.Markup)
	})

	t.Run("excludes data scripts regardless of quoting and case", func(t *testing.T) {
		t.Parallel()

		doc := `<script type='application/ld+json'>{}</script>` +
			`<script TYPE="Text/Template"><p>{{x}}</p></script>` +
			`<script type="module">run()</script>`

		got := gamecode.Parse(doc)

		assert.Equal(t, "run()", got.Script)
	})

	t.Run("joins scripts with a blank line in document order", func(t *testing.T) {
		t.Parallel()

		doc := "<body><p>x</p><script>a();</script><script src=\"lib.js\"></script><script>\n  b();\n</script></body>"

		got := gamecode.Parse(doc)

		assert.Equal(t, "a();\n\nb();", got.Script)
		assert.Equal(t, "<p>x</p>", got.Markup)
	})

	t.Run("uses only the first style block", func(t *testing.T) {
		t.Parallel()

		doc := "<style>a{}</style><body><style>b{}</style><main></main></body>"

		got := gamecode.Parse(doc)

		assert.Equal(t, "a{}", got.Styles)
		assert.Equal(t, "<main></main>", got.Markup)
	})

	t.Run("falls back to whole input without a body", func(t *testing.T) {
		t.Parallel()

		got := gamecode.Parse("<html><head><title>T</title></head><div>Z</div></html>")

		assert.Equal(t, "<div>Z</div>", got.Markup)
	})

	t.Run("fallback strips style and scripts from bare fragments", func(t *testing.T) {
		t.Parallel()

		got := gamecode.Parse("<style>p{}</style>\n<canvas id=\"c\"></canvas>\n<script>draw()</script>")

		assert.Equal(t, "p{}", got.Styles)
		assert.Equal(t, "draw()", got.Script)
		assert.Equal(t, `<canvas id="c"></canvas>`, got.Markup)
	})

	t.Run("does not treat header as head", func(t *testing.T) {
		t.Parallel()

		got := gamecode.Parse("<header>Score</header><div>Board</div>")

		assert.Equal(t, "<header>Score</header><div>Board</div>", got.Markup)
	})

	t.Run("matches tags case-insensitively across lines", func(t *testing.T) {
		t.Parallel()

		doc := "<HTML>\n<BODY class=\"game\">\n<H1>Go</H1>\n<SCRIPT>\nstart()\n</SCRIPT>\n</BODY>\n</HTML>"

		got := gamecode.Parse(doc)

		assert.Equal(t, "<H1>Go</H1>", got.Markup)
		assert.Equal(t, "start()", got.Script)
	})

	t.Run("degrades gracefully on malformed input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"<style>unterminated",
			"<script>never closed",
			"<body><div>",
			"</body></html>",
			"<<<>>>",
			"<script type=\"application/json\"",
			strings.Repeat("<div>", 1000),
		}
		for _, in := range inputs {
			assert.NotPanics(t, func() { gamecode.Parse(in) }, in)
		}

		got := gamecode.Parse("<script>never closed")
		assert.Empty(t, got.Script)
		assert.Equal(t, "<script>never closed", got.Markup)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		doc := gamecode.Format("<p>Hi</p>", "p{}", "go()")
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, "go()", gamecode.Parse(doc).Script)
			}()
		}
		wg.Wait()
	})
}
