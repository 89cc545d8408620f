// Package assets embeds the GLSL sources and default textures the demo
// scenes load when no on-disk override is configured.
package assets

import "embed"

//go:embed shaders/*.vert shaders/*.frag
var Shaders embed.FS

//go:embed textures/*.png
var Textures embed.FS
