package grid

// Layout maps grid cells to pixel coordinates on screen.
type Layout struct {
	TileSize int
	OriginX  int
	OriginY  int
}

// CellCenter returns the pixel center of the cell at (col, row).
func (l Layout) CellCenter(col, row int) (x, y float64) {
	x = float64(l.OriginX + col*l.TileSize + l.TileSize/2)
	y = float64(l.OriginY + row*l.TileSize + l.TileSize/2)
	return x, y
}

// CellOrigin returns the pixel top-left corner of the cell at (col, row).
func (l Layout) CellOrigin(col, row int) (x, y float64) {
	return float64(l.OriginX + col*l.TileSize), float64(l.OriginY + row*l.TileSize)
}
