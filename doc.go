// Package xmltree connects the node tree model to the outside world:
// serializing trees back to markup, escaping text content, and importing
// trees produced by an external parser. The tree model itself lives in
// the node subpackage.
package xmltree

// Version is the library version, reported by the bundled commands.
const Version = "0.1.0"
