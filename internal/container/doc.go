// Package container gives read-only access to the members of an ASiC or ODF
// zip container: the mimetype member, the file listing and the manifest at
// META-INF/manifest.xml. It can cross-check a manifest against the archive
// and copy member sizes into manifest entries.
package container
