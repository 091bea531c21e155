package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeepsOrdinaryMarkup(t *testing.T) {
	in := `<?xml version="1.0"?>
<!-- exported -->
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 24 24" width="24">
  <defs><linearGradient id="g"><stop offset="0" stop-color="#fff"/></linearGradient></defs>
  <path d="M0 0h24v24H0z" fill="url(#g)"/>
  <use xlink:href="#g"/>
</svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 24 24" width="24">`))
	require.Contains(t, out, `<linearGradient id="g"><stop offset="0" stop-color="#fff"></stop></linearGradient>`)
	require.Contains(t, out, `<path d="M0 0h24v24H0z" fill="url(#g)"></path>`)
	require.Contains(t, out, `<use xlink:href="#g"></use>`)
	require.NotContains(t, out, "exported")
	require.NotContains(t, out, "<?xml")
}

func TestDropsScriptsAndForeignContent(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg">
<script>alert(1)</script>
<foreignObject><div xmlns="http://www.w3.org/1999/xhtml"><script>alert(2)</script></div></foreignObject>
<circle r="4"/>
</svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.NotContains(t, out, "script")
	require.NotContains(t, out, "alert")
	require.NotContains(t, out, "foreignObject")
	require.Contains(t, out, `<circle r="4"></circle>`)
}

func TestDropsEventHandlersAndUnsafeURLs(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)">
<rect width="1" ONCLICK="x()" fill="url(https://evil.example/p.svg#a)"/>
<use href="https://evil.example/sprite.svg#icon"/>
<use href=" java&#x09;script:alert(1)"/>
<image href="data:text/html;base64,PHNjcmlwdD4="/>
<image href="data:image/png;base64,iVBORw0KGgo="/>
</svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.NotContains(t, out, "onload")
	require.NotContains(t, strings.ToLower(out), "onclick")
	require.NotContains(t, out, "evil.example")
	require.NotContains(t, out, "script")
	require.NotContains(t, out, "text/html")
	require.Contains(t, out, `<rect width="1"></rect>`)
	require.Contains(t, out, `<image href="data:image/png;base64,iVBORw0KGgo="></image>`)
}

func TestUnsafeStyleIsRemoved(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg">
<style>@import url(https://evil.example/x.css);</style>
<style>.a { fill: red; }</style>
<g style="background:url(javascript:alert(1))"><path style="fill:blue" d="M0 0"/></g>
</svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.NotContains(t, out, "@import")
	require.NotContains(t, out, "javascript")
	require.Contains(t, out, "<style>.a { fill: red; }</style>")
	require.Contains(t, out, `<g><path style="fill:blue" d="M0 0"></path></g>`)
}

func TestStyleSplitByCommentsOrCDATAIsRemoved(t *testing.T) {
	for name, in := range map[string]string{
		"comment": `<svg xmlns="http://www.w3.org/2000/svg"><style>svg{background:ur<!-- x -->l(https://evil.example/leak)}</style><rect width="1"/></svg>`,
		"cdata":   `<svg xmlns="http://www.w3.org/2000/svg"><style>@im<![CDATA[port "https://evil.example/x.css";]]></style><rect width="1"/></svg>`,
	} {
		t.Run(name, func(t *testing.T) {
			out, err := String(in)
			require.NoError(t, err)
			require.NotContains(t, out, "evil.example")
			require.Contains(t, out, "<style></style>")
			require.Contains(t, out, `<rect width="1"></rect>`)
		})
	}
}

func TestStyleKeepsTextOnly(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg"><style>.a{fill:red}<g><text>b</text></g>.c{fill:blue}</style></svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><style>.a{fill:red}.c{fill:blue}</style></svg>`, out)
}

func TestUnwrapsLinks(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg"><a href="https://example.com"><text x="1">hi &amp; bye</text></a></svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><text x="1">hi &amp; bye</text></svg>`, out)
}

func TestDropsUnknownNamespaces(t *testing.T) {
	in := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:ev="http://www.w3.org/2001/xml-events" xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd">
<sodipodi:namedview pagecolor="#fff"/>
<rect sodipodi:role="x" width="2"/>
</svg>`

	out, err := String(in)
	require.NoError(t, err)
	require.NotContains(t, out, "sodipodi")
	require.NotContains(t, out, "xml-events")
	require.Contains(t, out, `<rect width="2"></rect>`)
}

func TestRejectsNonSVG(t *testing.T) {
	_, err := String(`<html><body/></html>`)
	require.ErrorIs(t, err, ErrNotSVG)

	_, err = String(``)
	require.ErrorIs(t, err, ErrNotSVG)

	_, err = String(`<svg><g></svg>`)
	require.ErrorIs(t, err, ErrMalformed)

	_, err = String(`<svg></svg><svg></svg>`)
	require.ErrorIs(t, err, ErrMalformed)
}
