package csvbuf

// GetField copies the cell's text into dest and reports how the copy
// went:
//
//   - StatusOK: the whole text fit.
//   - StatusTruncated: only the first len(dest) bytes were copied.
//   - StatusEmptyCell: the cell does not exist; dest was zero-filled.
//   - StatusZeroCapacity: dest has zero length; nothing was copied.
//
// Any portion of dest beyond the copied text is filled with zero bytes.
func (b *Buffer) GetField(dest []byte, row, entry int) Status {
	if len(dest) == 0 {
		return StatusZeroCapacity
	}
	if row < 0 || row >= len(b.rows) || entry < 0 || entry >= len(b.rows[row]) {
		for i := range dest {
			dest[i] = 0
		}
		return StatusEmptyCell
	}
	text := b.rows[row][entry]
	n := copy(dest, text)
	for i := n; i < len(dest); i++ {
		dest[i] = 0
	}
	if len(text) > len(dest) {
		return StatusTruncated
	}
	return StatusOK
}

// Field returns the cell's text. The second return value is false if the
// cell does not exist.
func (b *Buffer) Field(row, entry int) (string, bool) {
	if row < 0 || row >= len(b.rows) || entry < 0 || entry >= len(b.rows[row]) {
		return "", false
	}
	return b.rows[row][entry], true
}

// SetField overwrites the cell's text, growing the buffer (appending rows
// and fields as needed) until the target cell exists. Negative indices
// are a no-op.
func (b *Buffer) SetField(row, entry int, text string) {
	if row < 0 || entry < 0 {
		return
	}
	for row >= len(b.rows) {
		b.appendRow()
	}
	for entry >= len(b.rows[row]) {
		b.appendField(row)
	}
	b.rows[row][entry] = text
}
