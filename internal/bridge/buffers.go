package bridge

// channels is the number of color components per cell (RGBA).
const channels = 4

// EmptyNextColor fills next-queue cells that hold no piece.
var EmptyNextColor = [channels]float32{1, 1, 1, 1}

// buffers is the flat buffer set. Lengths are fixed at allocation.
type buffers struct {
	height, width int
	numNexts      int
	nextSize      int
	holdSize      int

	field      []uint8
	fieldColor []float32
	nexts      []uint8
	nextsColor []float32
	hold       []uint8
	holdColor  []float32
}

func newBuffers(height, width, numNexts, nextSize, holdSize int) buffers {
	fieldCells := height * width
	nextCells := numNexts * nextSize * nextSize
	holdCells := holdSize * holdSize
	return buffers{
		height:     height,
		width:      width,
		numNexts:   numNexts,
		nextSize:   nextSize,
		holdSize:   holdSize,
		field:      make([]uint8, fieldCells),
		fieldColor: make([]float32, fieldCells*channels),
		nexts:      make([]uint8, nextCells),
		nextsColor: make([]float32, nextCells*channels),
		hold:       make([]uint8, holdCells),
		holdColor:  make([]float32, holdCells*channels),
	}
}

// fieldIndex returns the occupancy index of a field cell.
func (b *buffers) fieldIndex(row, col int) int {
	return row*b.width + col
}

// nextIndex returns the occupancy index of a cell inside queue slot slot.
func (b *buffers) nextIndex(slot, row, col int) int {
	return slot*b.nextSize*b.nextSize + row*b.nextSize + col
}

// holdIndex returns the occupancy index of a hold cell.
func (b *buffers) holdIndex(row, col int) int {
	return row*b.holdSize + col
}

// setColor writes one RGBA cell into a color buffer at occupancy index i.
func setColor(dst []float32, i int, c [channels]float32) {
	copy(dst[i*channels:(i+1)*channels], c[:])
}
