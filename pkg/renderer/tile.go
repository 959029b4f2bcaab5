package renderer

import (
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Tile is a rectangular block of pixels rendered by a single worker
type Tile struct {
	ID      int             // Index in row-major tile order
	Bounds  image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Sampler *core.PCGSampler
}

// NewTile creates a tile whose sampler depends only on seed and id, so the
// image does not depend on which worker renders the tile.
func NewTile(id int, bounds image.Rectangle, seed uint64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewPCGSamplerStream(seed, uint64(id)<<1|1),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed uint64) []*Tile {
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]*Tile, 0, tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			x0, y0 := tx*tileSize, ty*tileSize
			bounds := image.Rect(x0, y0, min(x0+tileSize, width), min(y0+tileSize, height))
			tiles = append(tiles, NewTile(len(tiles), bounds, seed))
		}
	}
	return tiles
}
