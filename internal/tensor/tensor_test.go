package tensor

import (
	"testing"
)

func TestDTypeString(t *testing.T) {
	tests := []struct {
		dt   DType
		want string
	}{
		{Uint8, "uint8"},
		{Int32, "int32"},
		{Float32, "float32"},
		{Float64, "float64"},
		{DType(99), "dtype(99)"},
	}
	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("DType(%d).String(): got %q, want %q", int(tt.dt), got, tt.want)
		}
	}
}

func TestNewPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewUint8 should panic when data length does not match shape")
		}
	}()
	NewUint8(3, 2, 2, make([]uint8, 11))
}

func TestZerosPanicsOnUnknownDType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Zeros should panic for an unknown dtype")
		}
	}()
	Zeros(DType(99), 1, 1, 1)
}

func TestShapeAndLen(t *testing.T) {
	tr := Zeros(Float32, 3, 4, 5)
	c, h, w := tr.Shape()
	if c != 3 || h != 4 || w != 5 {
		t.Errorf("Shape: got (%d,%d,%d), want (3,4,5)", c, h, w)
	}
	if tr.Len() != 60 {
		t.Errorf("Len: got %d, want 60", tr.Len())
	}
	if tr.PlaneSize() != 20 {
		t.Errorf("PlaneSize: got %d, want 20", tr.PlaneSize())
	}
}

func TestIndexAndAt(t *testing.T) {
	tr := NewUint8(2, 2, 3, []uint8{
		0, 1, 2,
		3, 4, 5,

		10, 11, 12,
		13, 14, 15,
	})

	if got := tr.Index(1, 1, 2); got != 11 {
		t.Errorf("Index(1,1,2): got %d, want 11", got)
	}
	if got := tr.At(0, 1, 0); got != 3 {
		t.Errorf("At(0,1,0): got %v, want 3", got)
	}
	if got := tr.At(1, 0, 2); got != 12 {
		t.Errorf("At(1,0,2): got %v, want 12", got)
	}
}

func TestSetValueSaturates(t *testing.T) {
	tests := []struct {
		name string
		dt   DType
		in   float64
		want float64
	}{
		{"uint8 overflow", Uint8, 300, 255},
		{"uint8 negative", Uint8, -5, 0},
		{"uint8 truncates toward zero", Uint8, 2.9, 2},
		{"int32 truncates toward zero", Int32, -3.9, -3},
		{"int32 keeps large values", Int32, 300, 300},
		{"float32 passthrough", Float32, 0.25, 0.25},
		{"float64 passthrough", Float64, -1.5, -1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Zeros(tt.dt, 1, 1, 1)
			tr.SetValue(0, tt.in)
			if got := tr.Value(0); got != tt.want {
				t.Errorf("SetValue(%v) on %s: got %v, want %v", tt.in, tt.dt, got, tt.want)
			}
		})
	}
}

func TestCast(t *testing.T) {
	src := NewFloat64(1, 1, 4, []float64{1.5, -0.5, 300, 254.9})

	u8 := src.Cast(Uint8)
	wantU8 := []uint8{1, 0, 255, 254}
	for i, want := range wantU8 {
		if got := u8.Uint8s()[i]; got != want {
			t.Errorf("Cast(Uint8)[%d]: got %d, want %d", i, got, want)
		}
	}

	i32 := src.Cast(Int32)
	wantI32 := []int32{1, 0, 300, 254}
	for i, want := range wantI32 {
		if got := i32.Int32s()[i]; got != want {
			t.Errorf("Cast(Int32)[%d]: got %d, want %d", i, got, want)
		}
	}

	f32 := src.Cast(Float32)
	if f32.DType() != Float32 {
		t.Errorf("Cast(Float32) dtype: got %s", f32.DType())
	}
	if got := f32.Value(0); got != 1.5 {
		t.Errorf("Cast(Float32)[0]: got %v, want 1.5", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := NewUint8(1, 1, 3, []uint8{1, 2, 3})
	cp := orig.Clone()

	cp.SetValue(0, 99)
	if got := orig.Value(0); got != 1 {
		t.Errorf("mutating the clone changed the original: got %v, want 1", got)
	}
	if got := cp.Value(0); got != 99 {
		t.Errorf("clone write lost: got %v, want 99", got)
	}
}

func TestBackingSliceAccessors(t *testing.T) {
	u8 := Zeros(Uint8, 1, 1, 1)
	if u8.Uint8s() == nil {
		t.Error("Uint8s on a uint8 tensor should not be nil")
	}
	if u8.Float32s() != nil || u8.Float64s() != nil || u8.Int32s() != nil {
		t.Error("non-matching accessors should return nil")
	}
}
