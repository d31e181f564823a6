package csvbuf

// Mutation primitives. Every higher-level operation (insert, remove at
// index, copy, clear) is composed from these four, so the width and
// ownership invariants only need to hold here.

// appendRow adds one row holding a single empty field.
func (b *Buffer) appendRow() {
	b.rows = append(b.rows, []string{""})
}

// appendField adds one empty field to the end of an existing row.
func (b *Buffer) appendField(row int) error {
	if row < 0 || row >= len(b.rows) {
		return ErrNoSuchRow
	}
	b.rows[row] = append(b.rows[row], "")
	return nil
}

// removeLastField drops the last field of the row. A row's sole field is
// blanked instead of removed, so width never drops below one. Rows past
// the end are already empty from the caller's view and are left alone.
func (b *Buffer) removeLastField(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	if len(b.rows[row]) == 1 {
		b.rows[row][0] = ""
		return
	}
	b.rows[row] = b.rows[row][:len(b.rows[row])-1]
}

// removeLastRow drops the final row of the buffer.
func (b *Buffer) removeLastRow() {
	if len(b.rows) == 0 {
		return
	}
	b.rows = b.rows[:len(b.rows)-1]
}

// InsertField inserts text at the given entry, shifting that field and
// every later field one position rightward. If the target cell does not
// exist yet, InsertField behaves like SetField, growing the buffer until
// it does.
func (b *Buffer) InsertField(row, entry int, text string) {
	if row < 0 || entry < 0 {
		return
	}
	if row >= len(b.rows) || entry >= len(b.rows[row]) {
		b.SetField(row, entry, text)
		return
	}
	b.appendField(row)
	for i := len(b.rows[row]) - 1; i > entry; i-- {
		b.rows[row][i] = b.rows[row][i-1]
	}
	b.rows[row][entry] = text
}

// RemoveField removes the field at the given entry, shifting every later
// field one position leftward. Removing a row's sole field blanks it
// instead, keeping the row at width one. Out-of-range indices are a
// no-op.
func (b *Buffer) RemoveField(row, entry int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	if entry < 0 || entry >= len(b.rows[row]) {
		return
	}
	for i := entry; i < len(b.rows[row])-1; i++ {
		b.rows[row][i] = b.rows[row][i+1]
	}
	b.removeLastField(row)
}

// ClearField blanks the cell's text. If the field is the last in its row
// and not the first, it is removed outright, shrinking the row's width.
// Out-of-range indices are already clear and are a no-op.
func (b *Buffer) ClearField(row, entry int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	if entry < 0 || entry >= len(b.rows[row]) {
		return
	}
	if entry == len(b.rows[row])-1 && entry != 0 {
		b.removeLastField(row)
		return
	}
	b.rows[row][entry] = ""
}

// ClearRow reduces the row to a single empty field. The row itself stays:
// clearing never changes the buffer's height. Out-of-range rows are a
// no-op.
func (b *Buffer) ClearRow(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row] = []string{""}
}

// RemoveRow removes the row, shifting every subsequent row one position
// earlier. Out-of-range rows are a no-op.
func (b *Buffer) RemoveRow(row int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	for i := row; i < len(b.rows)-1; i++ {
		b.CopyRow(i, b, i+1)
	}
	b.removeLastRow()
}

// CopyRow deep-copies row srcRow of src into row destRow of the buffer.
// src may be the buffer itself. The destination row is created if absent,
// and its width is reconciled (fields appended or removed) to match the
// source before the cell texts are copied. A source row past src's bounds
// clears the destination row, consistent with "absent means empty".
func (b *Buffer) CopyRow(destRow int, src *Buffer, srcRow int) {
	if destRow < 0 {
		return
	}
	if srcRow < 0 || srcRow >= len(src.rows) {
		b.ClearRow(destRow)
		return
	}
	for len(b.rows) < destRow+1 {
		b.appendRow()
	}
	for len(b.rows[destRow]) > len(src.rows[srcRow]) {
		b.removeLastField(destRow)
	}
	for len(b.rows[destRow]) < len(src.rows[srcRow]) {
		b.appendField(destRow)
	}
	for i, text := range src.rows[srcRow] {
		b.rows[destRow][i] = text
	}
}

// CopyField deep-copies one cell of src into one cell of the buffer,
// growing the buffer until the destination cell exists. src may be the
// buffer itself. A source cell past src's bounds copies as empty text.
func (b *Buffer) CopyField(destRow, destEntry int, src *Buffer, srcRow, srcEntry int) {
	text := ""
	if srcRow >= 0 && srcRow < len(src.rows) {
		if srcEntry >= 0 && srcEntry < len(src.rows[srcRow]) {
			text = src.rows[srcRow][srcEntry]
		}
	}
	b.SetField(destRow, destEntry, text)
}
