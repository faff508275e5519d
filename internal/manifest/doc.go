// Package manifest reads and writes the OASIS manifest.xml document carried
// at META-INF/manifest.xml inside ASiC and ODF containers.
//
// A document is parsed into a Manifest holding the package mimetype (the
// media type of the root entry "/") and the ordered list of file entries.
// Parsing separates two kinds of problems:
//
//   - fatal errors (ErrMalformedDocument) abort the parse and no Manifest is
//     returned: unparsable XML, a file-entry missing manifest:full-path or
//     manifest:media-type, or an unparsable manifest:size.
//   - soft findings (missing or unexpected manifest:version, a package
//     mimetype that differs from the expected one) are collected in
//     Result.Errors and never stop parsing.
//
// Writing always declares manifest:version="1.2" and never emits entries
// below META-INF/, so signature files listed in a parsed manifest are
// dropped when the manifest is written back.
//
//	res, err := manifest.Parse(data, manifest.ExpectMimeType("application/vnd.etsi.asic-e+zip"))
//	if err != nil {
//	    return err
//	}
//	for _, finding := range res.Errors {
//	    fmt.Println(finding)
//	}
//	res.Manifest.AddFile("doc.xml", "text/xml", manifest.SizeOf(42))
//	err = res.Manifest.Write(os.Stdout)
//
// A Manifest performs no locking; callers serialize mutation of a shared
// instance themselves.
package manifest
