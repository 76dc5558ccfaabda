// Package iconforge generates the placeholder icons of a browser extension.
//
// # Overview
//
// Each icon is a square canvas filled with a background color, with an
// outlined frame and a few horizontal "form field" lines drawn in the
// foreground color. Every measure is derived from the edge length alone,
// so the same design renders crisply at 16, 48 and 128 pixels.
//
// # Quick Start
//
//	import "github.com/autoflow/iconforge"
//
//	// Write icon16.png, icon48.png and icon128.png to ./icons
//	results, err := iconforge.CreateSet("icons", iconforge.DefaultSizes)
//
//	// Or a single file; the format follows the extension
//	res, err := iconforge.Create(48, "icon48.bmp")
//
// # Geometry
//
// For an edge length S, with integer division throughout:
//   - Padding P = S/4; the frame runs from (P, P) to (S-P, S-P) inclusive
//   - Frame stroke width max(2, S/16), growing inward
//   - Line spacing (S-2P)/(n+1) for n lines, lines inset S/8 inside the frame
//   - Line stroke width max(1, S/32), centred on the line's row
//
// Layout exposes these values, and the exact pixel boxes that get painted,
// without rendering anything.
//
// # Output
//
// Icons are rendered with github.com/gogpu/gg and encoded as PNG by default.
// BMP, TIFF and ICO are also available; see Formats. Encoding is
// deterministic: the same size and options always produce the same bytes.
package iconforge
