package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/asicmf-labs/asicmf/internal/manifest"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_Valid(t *testing.T) {
	l, result, err := ParseFile(testPath("valid-asic-e.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("unexpected issues: %+v", result.Issues)
	}
	if l.MimeType != "application/vnd.etsi.asic-e+zip" {
		t.Errorf("MimeType = %q", l.MimeType)
	}
	if len(l.Files) != 2 {
		t.Fatalf("Files len = %d, want 2", len(l.Files))
	}
	if l.Files[0].Size == nil || *l.Files[0].Size != 18211 {
		t.Errorf("Files[0].Size = %v, want 18211", l.Files[0].Size)
	}
	if l.Files[1].Size != nil {
		t.Errorf("Files[1].Size = %v, want nil", *l.Files[1].Size)
	}
}

func TestParseFile_Invalid(t *testing.T) {
	l, result, err := ParseFile(testPath("invalid-negative-size.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if l != nil {
		t.Error("expected nil layout for a schema violation")
	}
	if result == nil || result.Valid {
		t.Fatal("expected an invalid validation result")
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, _, err := ParseFile(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	data, err := os.ReadFile(testPath("invalid-not-yaml.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLayout_Manifest(t *testing.T) {
	l, _, err := ParseFile(testPath("valid-asic-e.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	m := l.Manifest()
	if mt, ok := m.MimeType(); !ok || mt != "application/vnd.etsi.asic-e+zip" {
		t.Errorf("MimeType() = %q, %v", mt, ok)
	}

	want := []manifest.Entry{
		manifest.NewEntry("contract.pdf", "application/pdf", manifest.SizeOf(18211)),
		manifest.NewEntry("annex/terms.txt", "text/plain", manifest.UnknownSize),
	}
	got := m.Files()
	if len(got) != len(want) {
		t.Fatalf("Files() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Files()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLayout_ManifestWithoutMimeType(t *testing.T) {
	l, _, err := ParseFile(testPath("valid-no-mimetype.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if _, ok := l.Manifest().MimeType(); ok {
		t.Error("manifest has a mimetype although the layout declares none")
	}
}

func TestFromManifest_MarshalValidates(t *testing.T) {
	m := manifest.New(manifest.WithMimeType("application/vnd.etsi.asic-s+zip")).
		AddFile("a.txt", "text/plain", manifest.SizeOf(3)).
		AddFile("b.txt", "text/plain", manifest.UnknownSize)

	out, err := Marshal(FromManifest(m))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	result, err := Validate(out)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Fatalf("marshaled layout is invalid: %+v\n%s", result.Issues, out)
	}

	l, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	back := l.Manifest().Files()
	orig := m.Files()
	for i := range orig {
		if back[i] != orig[i] {
			t.Errorf("entry %d = %+v, want %+v", i, back[i], orig[i])
		}
	}
}

func TestFromManifest_Empty(t *testing.T) {
	out, err := Marshal(FromManifest(manifest.New()))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	result, err := Validate(out)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty layout is invalid: %+v\n%s", result.Issues, out)
	}
}
