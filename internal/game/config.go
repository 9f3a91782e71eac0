package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon
	// generation. A seed of 0 means a time-based seed will be used.
	Seed int64
	// Depth is how many connected floors to generate.
	Depth int
	// Rows and Cols are each floor's grid dimensions, TileSize the pixel
	// edge length of one tile.
	Rows, Cols, TileSize int
}

// withDefaults fills in zero fields with the standard floor parameters.
func (c Config) withDefaults() Config {
	if c.Depth <= 0 {
		c.Depth = 3
	}
	if c.Rows <= 0 {
		c.Rows = mapgenDefaultRows
	}
	if c.Cols <= 0 {
		c.Cols = mapgenDefaultCols
	}
	if c.TileSize <= 0 {
		c.TileSize = mapgenDefaultTileSize
	}
	return c
}
