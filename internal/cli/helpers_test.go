package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const asicE = "application/vnd.etsi.asic-e+zip"

// runCLI executes the root command with args in an isolated config home and
// returns what it wrote to stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLIWithHome(t, t.TempDir(), args...)
}

// runCLIWithHome is runCLI with a caller-chosen config home, for commands
// that must see each other's settings.
func runCLIWithHome(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("ASICMF_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag in the tree to its default so state from
// one execution does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writeFile writes content to name inside a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// writeContainer creates a zip container holding the given name/content
// pairs in order.
func writeContainer(t *testing.T, members ...[2]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.asice")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, m := range members {
		w, err := zw.Create(m[0])
		if err != nil {
			t.Fatalf("adding %s: %v", m[0], err)
		}
		if _, err := w.Write([]byte(m[1])); err != nil {
			t.Fatalf("writing %s: %v", m[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
  <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.etsi.asic-e+zip"/>
  <manifest:file-entry manifest:full-path="doc.xml" manifest:media-type="text/xml" manifest:size="6"/>
  <manifest:file-entry manifest:full-path="notes.txt" manifest:media-type="text/plain"/>
  <manifest:file-entry manifest:full-path="META-INF/signatures0.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`
