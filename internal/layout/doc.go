// Package layout handles YAML layout files that describe a manifest by hand:
// the package mimetype plus the list of files with their media types and
// optional sizes. Layouts are validated against the JSON Schema embedded from
// schema/layout.schema.json before they are turned into a manifest.
package layout
