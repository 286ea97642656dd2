// Package format selects and decodes the document formats the treeflat CLI
// reads and writes.
//
// # Usage
//
//	f := format.DetectPath(path)
//	v, err := format.Decode(data, f)
//	// v is built from map[string]any, []any and scalar leaves,
//	// ready for treeflat.Flatten.
//
// Supported formats are JSON and YAML.
package format
