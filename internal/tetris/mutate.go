package tetris

// HardDropLimit bounds the number of extra steps a single hard drop may take
// after its first shift. The tallest possible drop needs exactly this many.
const HardDropLimit = 20

// kicks lists the column offsets tried, in order, when rotating. The I piece
// gets a wider search.
var (
	kicks     = []int{0, 1, -1}
	longKicks = []int{0, 1, -1, 2, -2}
)

// erase clears the piece's cells at its current placement. Only falling-piece
// codes are cleared, so an undrawn piece never wipes a fixed cell.
func (f *Field) erase(p Piece) {
	for _, c := range p.Cells() {
		if IsMoving(f.At(c)) {
			f[c.Row][c.Col] = CellEmpty
		}
	}
}

// paint marks the piece's cells as falling.
func (f *Field) paint(p Piece) {
	code := MovingCode(p.Shape)
	for _, c := range p.Cells() {
		f[c.Row][c.Col] = code
	}
}

// ShiftDown moves the piece one row down. When it cannot move the piece is
// fixed in place and false is returned; the caller must then settle.
func ShiftDown(p *Piece, f *Field) bool {
	if !CanMove(*p, f, MoveDown) {
		Fix(*p, f)
		return false
	}
	f.erase(*p)
	p.X++
	f.paint(*p)
	return true
}

// Fix writes the piece into the field as permanent cells.
func Fix(p Piece, f *Field) {
	code := FixedCode(p.Shape)
	for _, c := range p.Cells() {
		if c.Row < 0 || c.Row >= FieldHeight || c.Col < 0 || c.Col >= FieldWidth {
			continue
		}
		f[c.Row][c.Col] = code
	}
}

// HardDrop shifts the piece down until it lands.
func HardDrop(p *Piece, f *Field) {
	for steps := 0; ShiftDown(p, f) && steps < HardDropLimit; steps++ {
	}
}

// MoveLateral moves the piece one column left or right if possible.
// Any other move kind is ignored.
func MoveLateral(p *Piece, f *Field, kind MoveKind) bool {
	if kind != MoveLeft && kind != MoveRight {
		return false
	}
	if !CanMove(*p, f, kind) {
		return false
	}
	dx, dy, _ := kind.delta(*p)
	f.erase(*p)
	p.X += dx
	p.Y += dy
	f.paint(*p)
	return true
}

// Rotate turns the piece clockwise, shifting it sideways if the rotation is
// blocked in place. The piece is unchanged when no placement fits.
func Rotate(p *Piece, f *Field) bool {
	dy, ok := findKick(*p, f)
	if !ok {
		return false
	}
	f.erase(*p)
	p.Y += dy
	p.Rotation = (p.Rotation + 1) % RotationCount
	f.paint(*p)
	return true
}

// findKick returns the first column offset at which the rotated piece fits.
func findKick(p Piece, f *Field) (int, bool) {
	offsets := kicks
	if p.Shape == ShapeI {
		offsets = longKicks
	}
	for _, dy := range offsets {
		trial := p
		trial.Y += dy
		if CanMove(trial, f, MoveRotate) {
			return dy, true
		}
	}
	return 0, false
}
