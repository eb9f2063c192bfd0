package tilezss

// toTiles splits buf (a width x height image, both multiples of Tile) into
// TileArea-byte tiles in row-major tile-scan order. If transpose, each
// tile's bytes are reordered so pixel (r, c) within the tile becomes (c, r).
func toTiles(buf []byte, width int, transpose bool) []byte {
	height := len(buf) / width
	tilesX := width / Tile
	tilesY := height / Tile
	out := make([]byte, 0, len(buf))

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			baseRow := ty * Tile
			baseCol := tx * Tile
			for r := 0; r < Tile; r++ {
				for c := 0; c < Tile; c++ {
					var srcR, srcC int
					if transpose {
						srcR, srcC = c, r
					} else {
						srcR, srcC = r, c
					}
					out = append(out, buf[(baseRow+srcR)*width+(baseCol+srcC)])
				}
			}
		}
	}
	return out
}

// fromTiles is the inverse of toTiles.
func fromTiles(stream []byte, width int, transpose bool) []byte {
	height := len(stream) / width
	tilesX := width / Tile
	tilesY := height / Tile
	out := make([]byte, len(stream))

	pos := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			baseRow := ty * Tile
			baseCol := tx * Tile
			for r := 0; r < Tile; r++ {
				for c := 0; c < Tile; c++ {
					var dstR, dstC int
					if transpose {
						dstR, dstC = c, r
					} else {
						dstR, dstC = r, c
					}
					out[(baseRow+dstR)*width+(baseCol+dstC)] = stream[pos]
					pos++
				}
			}
		}
	}
	return out
}

// splitTiles divides a tile-scan-order byte stream into TileArea-sized
// tiles, used on the adaptive decode path where tile boundaries are fixed
// by position rather than derived from image geometry.
func splitTiles(stream []byte) [][]byte {
	n := len(stream) / TileArea
	tiles := make([][]byte, n)
	for i := 0; i < n; i++ {
		tiles[i] = stream[i*TileArea : (i+1)*TileArea]
	}
	return tiles
}

// concatTiles is the inverse of splitTiles.
func concatTiles(tiles [][]byte) []byte {
	out := make([]byte, 0, len(tiles)*TileArea)
	for _, t := range tiles {
		out = append(out, t...)
	}
	return out
}
