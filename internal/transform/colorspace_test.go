package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/pixel-augment/internal/tensor"
)

// pixelU8 builds a 3x1x1 uint8 tensor holding a single RGB (or HLS) pixel.
func pixelU8(a, b, c uint8) *tensor.Tensor {
	return tensor.NewUint8(3, 1, 1, []uint8{a, b, c})
}

func TestRGBToHLS_Uint8_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   uint8 // [0,180]
		wantL   uint8 // [0,255]
		wantS   uint8 // [0,255]
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 255, 0},
		{"gray", 128, 128, 128, 0, 128, 0},
		{"red", 255, 0, 0, 0, 128, 255},
		{"green", 0, 255, 0, 60, 128, 255},
		{"blue", 0, 0, 255, 120, 128, 255},
		{"yellow", 255, 255, 0, 30, 128, 255},
		{"dark red", 128, 0, 0, 0, 64, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RGBToHLS(pixelU8(tt.r, tt.g, tt.b))
			if err != nil {
				t.Fatalf("RGBToHLS failed: %v", err)
			}
			if out.DType() != tensor.Uint8 {
				t.Fatalf("result dtype: got %s, want uint8", out.DType())
			}
			got := out.Uint8s()
			if got[0] != tt.wantH || got[1] != tt.wantL || got[2] != tt.wantS {
				t.Errorf("HLS of (%d,%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
					tt.r, tt.g, tt.b, got[0], got[1], got[2], tt.wantH, tt.wantL, tt.wantS)
			}
		})
	}
}

func TestRGBToHLS_Float(t *testing.T) {
	for _, dt := range []tensor.DType{tensor.Float32, tensor.Float64} {
		t.Run(dt.String(), func(t *testing.T) {
			in := tensor.Zeros(dt, 3, 1, 1)
			in.SetValue(1, 1.0) // pure green
			out, err := RGBToHLS(in)
			if err != nil {
				t.Fatalf("RGBToHLS failed: %v", err)
			}
			if out.DType() != dt {
				t.Fatalf("result dtype: got %s, want %s", out.DType(), dt)
			}

			// Hue in degrees, L and S in [0,1].
			want := []float64{120, 0.5, 1}
			for i, w := range want {
				if got := out.Value(i); math.Abs(got-w) > 1e-5 {
					t.Errorf("channel %d: got %v, want %v", i, got, w)
				}
			}
		})
	}
}

func TestHLSToRGB_Float(t *testing.T) {
	in := tensor.NewFloat64(3, 1, 1, []float64{120, 0.5, 1}) // green in HLS
	out, err := HLSToRGB(in)
	if err != nil {
		t.Fatalf("HLSToRGB failed: %v", err)
	}

	want := []float64{0, 1, 0}
	for i, w := range want {
		if got := out.Value(i); math.Abs(got-w) > 1e-9 {
			t.Errorf("channel %d: got %v, want %v", i, got, w)
		}
	}
}

func TestHLSToRGB_Uint8_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		h, l, s uint8
		wantR   uint8
		wantG   uint8
		wantB   uint8
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 0, 255, 0, 255, 255, 255},
		{"gray", 0, 128, 0, 128, 128, 128},
		// Lightness 128 is slightly above exact mid-gray (127.5), so fully
		// saturated red comes back with G and B at 1 rather than 0.
		{"red", 0, 128, 255, 255, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := HLSToRGB(pixelU8(tt.h, tt.l, tt.s))
			if err != nil {
				t.Fatalf("HLSToRGB failed: %v", err)
			}
			got := out.Uint8s()
			if got[0] != tt.wantR || got[1] != tt.wantG || got[2] != tt.wantB {
				t.Errorf("RGB of HLS (%d,%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
					tt.h, tt.l, tt.s, got[0], got[1], got[2], tt.wantR, tt.wantG, tt.wantB)
			}
		})
	}
}

func TestColorspaceRoundTrip_Uint8(t *testing.T) {
	// Representative palette: round-tripping through the quantized HLS
	// representation may move each channel by at most one unit.
	palette := [][3]uint8{
		{0, 0, 0},
		{255, 255, 255},
		{128, 128, 128},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{255, 255, 0},
		{128, 0, 0},
		{200, 150, 100},
		{90, 120, 150},
	}

	plane := len(palette)
	data := make([]uint8, 3*plane)
	for i, px := range palette {
		data[i] = px[0]
		data[plane+i] = px[1]
		data[2*plane+i] = px[2]
	}
	img := tensor.NewUint8(3, 1, plane, data)

	hls, err := RGBToHLS(img)
	if err != nil {
		t.Fatalf("RGBToHLS failed: %v", err)
	}
	back, err := HLSToRGB(hls)
	if err != nil {
		t.Fatalf("HLSToRGB failed: %v", err)
	}

	for i := 0; i < img.Len(); i++ {
		orig := int(img.Uint8s()[i])
		got := int(back.Uint8s()[i])
		if diff := got - orig; diff < -1 || diff > 1 {
			t.Errorf("element %d: %d round-tripped to %d", i, orig, got)
		}
	}
}

func TestColorspace_UnsupportedDType(t *testing.T) {
	in := tensor.Zeros(tensor.Int32, 3, 1, 1)

	if _, err := RGBToHLS(in); !errors.Is(err, ErrUnsupportedDType) {
		t.Errorf("RGBToHLS(int32) error should wrap ErrUnsupportedDType, got: %v", err)
	}
	if _, err := HLSToRGB(in); !errors.Is(err, ErrUnsupportedDType) {
		t.Errorf("HLSToRGB(int32) error should wrap ErrUnsupportedDType, got: %v", err)
	}
}

func TestColorspace_WrongChannelCount(t *testing.T) {
	in := tensor.Zeros(tensor.Uint8, 1, 2, 2)
	if _, err := RGBToHLS(in); err == nil {
		t.Error("RGBToHLS should fail for a single-channel tensor")
	}
	if _, err := HLSToRGB(in); err == nil {
		t.Error("HLSToRGB should fail for a single-channel tensor")
	}
}
