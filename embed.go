package embedded

import "embed"

//go:embed "seed"
var Seed embed.FS
