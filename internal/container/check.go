package container

import (
	"fmt"
	"strings"

	"github.com/asicmf-labs/asicmf/internal/manifest"
)

// Check cross-references m with the container members and returns one
// finding per inconsistency: payload members missing from the manifest,
// entries without a member, and known sizes that differ from the member.
// The mimetype member and META-INF/ members need not be listed.
func (c *Container) Check(m *manifest.Manifest) []string {
	var findings []string

	for _, f := range c.Files() {
		if f.Name == MimeTypeMember || strings.HasPrefix(f.Name, manifest.MetaInfPrefix) {
			continue
		}
		if _, ok := m.Lookup(f.Name); !ok {
			findings = append(findings, fmt.Sprintf("%s is not listed in the manifest", f.Name))
		}
	}

	for _, e := range m.Files() {
		member, ok := c.byName[e.Path]
		if !ok {
			if !strings.HasSuffix(e.Path, "/") {
				findings = append(findings, fmt.Sprintf("%s is listed in the manifest but missing from the container", e.Path))
			}
			continue
		}
		if n, known := e.Size.Value(); known && n != member.UncompressedSize64 {
			findings = append(findings, fmt.Sprintf("%s: manifest size %d, container size %d", e.Path, n, member.UncompressedSize64))
		}
	}

	c.logger.Debug().Int("findings", len(findings)).Msg("checked manifest against container")
	return findings
}

// SyncSizes sets the size of every manifest entry that has a container
// member to the member's uncompressed size. It returns the number of
// entries whose size changed.
func (c *Container) SyncSizes(m *manifest.Manifest) (int, error) {
	updated := 0
	seen := make(map[string]bool)
	for _, e := range m.Files() {
		// SetFileSize only reaches the first entry of a duplicated path.
		if seen[e.Path] {
			continue
		}
		seen[e.Path] = true

		member, ok := c.byName[e.Path]
		if !ok {
			continue
		}
		size := manifest.SizeOf(member.UncompressedSize64)
		if e.Size == size {
			continue
		}
		if err := m.SetFileSize(e.Path, size); err != nil {
			return updated, err
		}
		updated++
		c.logger.Debug().Str("path", e.Path).Stringer("size", size).Msg("updated entry size")
	}
	return updated, nil
}
