// Package assets embeds the demo's audio clips and arena levels and
// provides the loaders for both.
package assets

import "embed"

//go:embed all:audio all:levels
var assetFS embed.FS

// FS exposes the embedded asset tree.
func FS() embed.FS {
	return assetFS
}
