// Package xmldoc wraps the generic XML tree primitives the manifest codec
// consumes: parsing bytes into a prefix-preserving element tree, building a
// fresh document, walking elements by qualified tag name, and rendering a
// tree back to bytes.
package xmldoc
