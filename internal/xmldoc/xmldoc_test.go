package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"
)

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unquoted attribute", `<a b=c/>`},
		{"truncated", `<a b="c"`},
		{"no root element", `just some text`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformed", tt.data, err)
			}
		})
	}
}

func TestElementsByTagName_DocumentOrder(t *testing.T) {
	doc, err := Parse([]byte(`<m:root><m:item id="1"><m:item id="2"/></m:item><other/><m:item id="3"/></m:root>`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	items := ElementsByTagName(doc.Root(), "m:item")
	if len(items) != 3 {
		t.Fatalf("found %d elements, want 3", len(items))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got, _ := Attr(items[i], "id"); got != want {
			t.Errorf("items[%d] id = %q, want %q", i, got, want)
		}
	}

	if got := ElementsByTagName(doc.Root(), "item"); len(got) != 0 {
		t.Errorf("unqualified lookup found %d elements, want 0", len(got))
	}
	if got := ElementsByTagName(nil, "m:item"); got != nil {
		t.Errorf("nil root returned %v, want nil", got)
	}
}

func TestElementsByTagName_SkipsRoot(t *testing.T) {
	doc, err := Parse([]byte(`<m:item id="outer"><m:item id="inner"/></m:item>`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	items := ElementsByTagName(doc.Root(), "m:item")
	if len(items) != 1 {
		t.Fatalf("found %d elements, want 1", len(items))
	}
	if id, _ := Attr(items[0], "id"); id != "inner" {
		t.Errorf("matched id %q, want inner", id)
	}
}

func TestRender_ControlCharactersInAttributes(t *testing.T) {
	const value = "a\rb\nc\td"
	doc := New()
	doc.CreateElement("root").CreateAttr("v", value)

	var buf bytes.Buffer
	if err := Render(doc, &buf, DefaultIndent); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "&#xD;") {
		t.Errorf("carriage return not escaped:\n%q", buf.String())
	}

	back, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got, _ := Attr(back.Root(), "v"); got != value {
		t.Errorf("attribute = %q after round trip, want %q", got, value)
	}
}

func TestParse_KeepsUnderlyingError(t *testing.T) {
	_, err := Parse([]byte(`<a b="c"`))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
	var syntaxErr *xml.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("error %v does not wrap the decoder's *xml.SyntaxError", err)
	}
}

func TestAttr_AbsentVersusEmpty(t *testing.T) {
	doc, err := Parse([]byte(`<m:root m:empty="" m:set="x"/>`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	root := doc.Root()

	if v, ok := Attr(root, "m:set"); !ok || v != "x" {
		t.Errorf("Attr(m:set) = %q, %v; want \"x\", true", v, ok)
	}
	if v, ok := Attr(root, "m:empty"); !ok || v != "" {
		t.Errorf("Attr(m:empty) = %q, %v; want \"\", true", v, ok)
	}
	if _, ok := Attr(root, "m:missing"); ok {
		t.Error("Attr(m:missing) reported present")
	}
}

func TestRender(t *testing.T) {
	doc := New()
	root := doc.CreateElement("m:root")
	root.CreateAttr("xmlns:m", "urn:example")
	root.CreateElement("m:child").CreateAttr("m:a", "1 & 2")

	var buf bytes.Buffer
	if err := Render(doc, &buf, DefaultIndent); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<m:root xmlns:m="urn:example">`,
		"\n  <m:child m:a=\"1 &amp; 2\"/>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_NoIndent(t *testing.T) {
	doc := New()
	doc.CreateElement("root").CreateElement("child")

	var buf bytes.Buffer
	if err := Render(doc, &buf, 0); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(buf.String(), "<root><child/></root>") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriterFailure(t *testing.T) {
	doc := New()
	doc.CreateElement("root")

	err := Render(doc, failingWriter{}, DefaultIndent)
	if !errors.Is(err, ErrRender) {
		t.Errorf("Render error = %v, want ErrRender", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Render error %q does not carry the writer error", err)
	}
}
