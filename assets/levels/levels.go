// Package levels embeds the stage files. It is kept apart from package assets
// so the terminal frontend can read stages without linking ebiten.
package levels

import "embed"

//go:embed *.tmx *.png
var FS embed.FS
