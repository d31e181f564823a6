package csvbuf

import (
	"bytes"
	"testing"
)

func TestGetField(t *testing.T) {
	buf := mustLoad(t, "hello,world\n,short")

	tests := []struct {
		name       string
		capacity   int
		row, entry int
		wantStatus Status
		wantBytes  []byte
	}{
		{
			name:     "exact fit",
			capacity: 5, row: 0, entry: 0,
			wantStatus: StatusOK,
			wantBytes:  []byte("hello"),
		},
		{
			name:     "larger destination zero-filled",
			capacity: 8, row: 0, entry: 1,
			wantStatus: StatusOK,
			wantBytes:  []byte("world\x00\x00\x00"),
		},
		{
			name:     "truncated to capacity",
			capacity: 2, row: 0, entry: 0,
			wantStatus: StatusTruncated,
			wantBytes:  []byte("he"),
		},
		{
			name:     "existing empty cell is ok",
			capacity: 3, row: 1, entry: 0,
			wantStatus: StatusOK,
			wantBytes:  []byte{0, 0, 0},
		},
		{
			name:     "row out of range",
			capacity: 4, row: 9, entry: 0,
			wantStatus: StatusEmptyCell,
			wantBytes:  []byte{0, 0, 0, 0},
		},
		{
			name:     "entry out of range",
			capacity: 4, row: 0, entry: 9,
			wantStatus: StatusEmptyCell,
			wantBytes:  []byte{0, 0, 0, 0},
		},
		{
			name:     "negative index",
			capacity: 2, row: -1, entry: 0,
			wantStatus: StatusEmptyCell,
			wantBytes:  []byte{0, 0},
		},
		{
			name:     "zero capacity",
			capacity: 0, row: 0, entry: 0,
			wantStatus: StatusZeroCapacity,
			wantBytes:  []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := make([]byte, tt.capacity)
			// Dirty the destination to prove it gets overwritten.
			for i := range dest {
				dest[i] = 0xFF
			}
			status := buf.GetField(dest, tt.row, tt.entry)
			if status != tt.wantStatus {
				t.Errorf("GetField status = %v, want %v", status, tt.wantStatus)
			}
			if !bytes.Equal(dest, tt.wantBytes) {
				t.Errorf("dest = %q, want %q", dest, tt.wantBytes)
			}
		})
	}
}

func TestSetField_GrowsBuffer(t *testing.T) {
	buf := New()
	buf.SetField(2, 3, "deep")

	if buf.Height() != 3 {
		t.Fatalf("Height() = %d, want 3", buf.Height())
	}
	// Intervening rows exist with a single empty field each.
	for row := 0; row < 2; row++ {
		if buf.Width(row) != 1 {
			t.Errorf("Width(%d) = %d, want 1", row, buf.Width(row))
		}
	}
	if buf.Width(2) != 4 {
		t.Errorf("Width(2) = %d, want 4", buf.Width(2))
	}
	if got, _ := buf.Field(2, 3); got != "deep" {
		t.Errorf("Field(2, 3) = %q, want %q", got, "deep")
	}
}

func TestSetField_Overwrite(t *testing.T) {
	buf := mustLoad(t, "a,b")
	buf.SetField(0, 1, "replaced")
	assertCells(t, buf, [][]string{{"a", "replaced"}})
}

func TestField_Absent(t *testing.T) {
	buf := mustLoad(t, "a")
	if _, ok := buf.Field(0, 1); ok {
		t.Error("Field(0, 1) ok = true for absent cell")
	}
	if _, ok := buf.Field(-1, 0); ok {
		t.Error("Field(-1, 0) ok = true for negative row")
	}
}

func TestSizeQueries(t *testing.T) {
	buf := mustLoad(t, "one,three\nlonger")

	if got := buf.Height(); got != 2 {
		t.Errorf("Height() = %d, want 2", got)
	}
	if got := buf.Width(0); got != 2 {
		t.Errorf("Width(0) = %d, want 2", got)
	}
	if got := buf.Width(5); got != 0 {
		t.Errorf("Width(5) = %d, want 0", got)
	}
	if got := buf.FieldLength(1, 0); got != 6 {
		t.Errorf("FieldLength(1, 0) = %d, want 6", got)
	}
	if got := buf.FieldLength(0, 9); got != 0 {
		t.Errorf("FieldLength(0, 9) = %d, want 0", got)
	}
	if got := buf.FieldLength(9, 0); got != 0 {
		t.Errorf("FieldLength(9, 0) = %d, want 0", got)
	}
}
