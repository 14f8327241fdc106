package steg

// Channel selects one colour component of a pixel.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

// AllChannels lists every channel in canonical order, the order the header
// bitmap encodes them in.
var AllChannels = []Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Coord is one pixel position in the grid.
type Coord struct {
	X int
	Y int
}

// Grid is a width×height raster of RGB pixels, three bytes per pixel,
// stored row-major. It is the only mutable state an insert or extract
// operation touches; the caller owns it exclusively for the duration of
// one call.
type Grid struct {
	width  int
	height int
	pix    []uint8
}

// NewGrid allocates a zeroed (black) grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Pixels returns the total pixel count.
func (g *Grid) Pixels() int { return g.width * g.height }

func (g *Grid) index(x, y int, c Channel) int {
	return (y*g.width+x)*3 + int(c)
}

// At returns the channel byte at (x, y).
func (g *Grid) At(x, y int, c Channel) uint8 {
	return g.pix[g.index(x, y, c)]
}

// Set replaces the channel byte at (x, y).
func (g *Grid) Set(x, y int, c Channel, v uint8) {
	g.pix[g.index(x, y, c)] = v
}

// Bit extracts a single bit of a channel byte. Position 0 is the most
// significant bit, 7 the least significant.
func (g *Grid) Bit(x, y int, c Channel, pos int) uint8 {
	return (g.pix[g.index(x, y, c)] >> (7 - pos)) & 1
}

// SetBit writes a single bit of a channel byte, leaving the other seven
// bits untouched. The byte is re-read on every call, so consecutive writes
// to different bit positions of the same byte all stay durable.
func (g *Grid) SetBit(x, y int, c Channel, pos int, bit uint8) {
	i := g.index(x, y, c)
	mask := uint8(1) << (7 - pos)
	if bit == 0 {
		g.pix[i] &^= mask
	} else {
		g.pix[i] |= mask
	}
}

// coords returns every position of the grid in base order: column-major,
// x advancing in the outer loop. Derivation shuffles start from this order.
func (g *Grid) coords() []Coord {
	out := make([]Coord, 0, g.Pixels())
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}
