package cli

import (
	"strings"
	"testing"

	"github.com/asicmf-labs/asicmf/internal/manifest"
)

func TestSync(t *testing.T) {
	path := writeContainer(t,
		[2]string{"mimetype", asicE},
		[2]string{"doc.xml", "<document/>"},
		[2]string{"notes.txt", "four"},
		[2]string{"META-INF/manifest.xml", sampleManifest},
		[2]string{"META-INF/signatures0.xml", "<sig/>"},
	)

	out, stderr, err := runCLI(t, "sync", path)
	if err != nil {
		t.Fatalf("sync error: %v", err)
	}
	if !strings.Contains(stderr, "synced entry sizes") {
		t.Errorf("stderr missing sync log:\n%s", stderr)
	}
	if strings.Contains(out, "META-INF/") {
		t.Errorf("META-INF entry written:\n%s", out)
	}

	res, err := manifest.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	for path, want := range map[string]manifest.Size{
		"doc.xml":   manifest.SizeOf(11),
		"notes.txt": manifest.SizeOf(4),
	} {
		e, ok := res.Manifest.Lookup(path)
		if !ok {
			t.Errorf("%s missing from output", path)
			continue
		}
		if e.Size != want {
			t.Errorf("%s size = %v, want %v", path, e.Size, want)
		}
	}
}

func TestSync_NotAContainer(t *testing.T) {
	path := writeFile(t, "manifest.xml", sampleManifest)

	if _, _, err := runCLI(t, "sync", path); err == nil {
		t.Fatal("expected error for a bare manifest, got nil")
	}
}
