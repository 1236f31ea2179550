// Package tex converts structured page content to LaTeX fragments.
//
// The conversion pipeline is strictly one-directional: raw text is split
// into plain and protected segments (math, cross-references), plain
// segments are escaped and the markdown-like dialect is converted to
// structural commands, the segments are reassembled, and a line-oriented
// list-detection pass turns dash-marked lines into itemize environments.
// Block renderers then wrap the result in kind-specific environments and
// the page composer concatenates fragments in input order.
//
// The package is stateless across invocations and never fails on
// business-logic problems: malformed blocks degrade to an empty fragment
// plus a recorded warning so that one bad block never aborts a page.
package tex
