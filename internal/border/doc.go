// Package border detects and erases a solid red border artifact from the
// edges of an RGBA image.
//
// The border is assumed to be at most one pixel-line thick per side. For
// each of the four edges (top, bottom, left, right) the algorithm walks
// inward past fully transparent lines to the first line containing any
// non-transparent pixel, and evaluates that single line: if the fraction
// of pure opaque red pixels among its non-transparent pixels meets the
// threshold, every red pixel on the line is set to fully transparent
// black. Whether or not the line qualified, the scan for that edge stops
// there; no further lines are examined.
//
// # Pixel Format
//
// Operations work on *image.NRGBA: 8 bits per channel, 4 channels,
// non-premultiplied alpha. "Pure opaque red" means channel values of
// exactly R=255, G=0, B=0, A=255 (1, 0, 0, 1 in normalized space); there
// is no tolerance band, so anti-aliased red-ish pixels never match.
// Inputs with 16-bit channels fail with ErrBitDepth, inputs in any other
// color model fail with ErrFormat, both before any pixel is touched.
//
// # Scan Order and Shared State
//
// The four passes run in a fixed order: top, bottom, left, right. All
// passes share one red mask and its per-line red counts, so a column
// pass sees red pixels already cleared by the row passes. The
// non-transparent counts, however, are computed once up front and never
// updated: a column's denominator still includes pixels the row passes
// made transparent. This staleness is a deliberate compatibility
// behavior, not an oversight; see the column fraction tests.
package border
