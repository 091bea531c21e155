// Package sanitize cleans user supplied SVG markup before it is inlined
// into a page. Everything not on the allow-list is dropped: scripts,
// foreign content, event handlers, external references and unsafe CSS.
package sanitize

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrNotSVG    = errors.New("document is not an svg")
	ErrMalformed = errors.New("malformed svg document")
)

// SVG reads an SVG document from r and returns its sanitized serialization.
func SVG(r io.Reader) ([]byte, error) {
	d := xml.NewDecoder(r)
	d.Entity = xml.HTMLEntity

	var (
		out     bytes.Buffer
		css     strings.Builder
		stack   []frame
		skip    int
		sawRoot bool
	)

	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 {
				skip++
				continue
			}
			name := qualifiedName(t.Name)
			if !sawRoot {
				if t.Name.Local != "svg" {
					return nil, ErrNotSVG
				}
				sawRoot = true
			} else if len(stack) == 0 {
				return nil, fmt.Errorf("%w: multiple root elements", ErrMalformed)
			}

			// <style> holds only text.
			if current(stack) == "style" {
				skip = 1
				continue
			}
			if unwrappedElements[t.Name.Local] && t.Name.Space == "" {
				stack = append(stack, frame{name: name, unwrapped: true})
				continue
			}
			if t.Name.Space != "" || !allowedElements[t.Name.Local] {
				skip = 1
				continue
			}

			stack = append(stack, frame{name: name})
			writeStart(&out, t)

		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			if len(stack) == 0 || stack[len(stack)-1].name != qualifiedName(t.Name) {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrMalformed, qualifiedName(t.Name))
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.unwrapped {
				continue
			}
			if top.name == "style" {
				// Checked as a whole: dropped comments and CDATA boundaries
				// must not split a blocked construct across text tokens.
				if text := css.String(); safeCSS(text) {
					out.WriteString(textEscaper.Replace(text))
				}
				css.Reset()
			}
			out.WriteString("</" + top.name + ">")

		case xml.CharData:
			if skip > 0 || len(stack) == 0 {
				continue
			}
			if current(stack) == "style" {
				css.Write(t)
				continue
			}
			out.WriteString(textEscaper.Replace(string(t)))
		}
		// Comments, processing instructions and directives (DOCTYPE with
		// entity declarations) are never copied.
	}

	if !sawRoot {
		return nil, ErrNotSVG
	}
	if len(stack) != 0 || skip != 0 {
		return nil, fmt.Errorf("%w: unclosed elements", ErrMalformed)
	}
	return out.Bytes(), nil
}

// String is SVG for in-memory markup.
func String(markup string) (string, error) {
	b, err := SVG(strings.NewReader(markup))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "\n", "&#xA;", "\t", "&#x9;")
)

type frame struct {
	name      string
	unwrapped bool
}

func current(stack []frame) string {
	for i := len(stack) - 1; i >= 0; i-- {
		if !stack[i].unwrapped {
			return stack[i].name
		}
	}
	return ""
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func writeStart(out *bytes.Buffer, t xml.StartElement) {
	out.WriteString("<" + qualifiedName(t.Name))
	for _, a := range t.Attr {
		if !keepAttr(t.Name.Local, a) {
			continue
		}
		out.WriteString(" " + qualifiedName(a.Name) + `="` + attrEscaper.Replace(a.Value) + `"`)
	}
	out.WriteString(">")
}

func keepAttr(element string, a xml.Attr) bool {
	switch {
	case a.Name.Space == "" && a.Name.Local == "xmlns":
		return allowedNamespaces[a.Value]
	case a.Name.Space == "xmlns":
		return allowedNamespaces[a.Value]
	case a.Name.Space == "xlink" && a.Name.Local == "href", a.Name.Space == "" && a.Name.Local == "href":
		return safeHref(element, a.Value)
	case a.Name.Space == "xml" && (a.Name.Local == "space" || a.Name.Local == "lang"):
		return true
	case a.Name.Space != "":
		return false
	case strings.HasPrefix(strings.ToLower(a.Name.Local), "on"):
		return false
	case !allowedAttributes[a.Name.Local]:
		return false
	case a.Name.Local == "style":
		return safeCSS(a.Value)
	}
	return safeValue(a.Value)
}

// compact lowercases s and drops whitespace and control characters, which
// browsers ignore inside URL schemes.
func compact(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r <= ' ' || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func safeHref(element, value string) bool {
	v := compact(value)
	if strings.HasPrefix(v, "#") {
		return true
	}
	if element == "image" {
		for _, prefix := range allowedImageData {
			if strings.HasPrefix(v, prefix) {
				return true
			}
		}
	}
	return false
}

func safeValue(value string) bool {
	v := compact(value)
	if strings.Contains(v, "javascript:") || strings.Contains(v, "vbscript:") || strings.Contains(v, "data:") {
		return false
	}
	return localURLsOnly(v)
}

func safeCSS(css string) bool {
	v := compact(css)
	for _, bad := range []string{"expression(", "@import", "javascript:", "vbscript:", "behavior:", "-moz-binding", "\\"} {
		if strings.Contains(v, bad) {
			return false
		}
	}
	return localURLsOnly(v)
}

// localURLsOnly accepts url() references only when they point into the document.
func localURLsOnly(v string) bool {
	for {
		i := strings.Index(v, "url(")
		if i < 0 {
			return true
		}
		v = strings.TrimLeft(v[i+len("url("):], `"'`)
		if !strings.HasPrefix(v, "#") {
			return false
		}
	}
}
