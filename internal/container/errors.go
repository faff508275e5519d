package container

import "errors"

var (
	// ErrNoManifest indicates the container has no META-INF/manifest.xml.
	ErrNoManifest = errors.New("container has no META-INF/manifest.xml")

	// ErrNotContainer indicates the file is not a readable zip archive.
	ErrNotContainer = errors.New("not a zip container")
)
