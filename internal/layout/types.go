package layout

// Layout is the YAML form of a manifest.
type Layout struct {
	MimeType string `yaml:"mimetype,omitempty" json:"mimetype,omitempty"`
	Files    []File `yaml:"files" json:"files"`
}

// File describes one manifest entry. A nil Size leaves the size unknown.
type File struct {
	Path      string  `yaml:"path" json:"path"`
	MediaType string  `yaml:"media_type" json:"media_type"`
	Size      *uint64 `yaml:"size,omitempty" json:"size,omitempty"`
}
