package tensor

import "testing"

// TestShape_String tests tuple rendering of shapes.
func TestShape_String(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  string
	}{
		{"batched image", Shape{DimNone, 224, 224, 3}, "(None, 224, 224, 3)"},
		{"known rank-4", Shape{3, 3, 3, 64}, "(3, 3, 3, 64)"},
		{"one-tuple", Shape{64}, "(64,)"},
		{"batched vector", Shape{DimNone, 25088}, "(None, 25088)"},
		{"empty", Shape{}, "()"},
	}

	for _, tt := range tests {
		if got := tt.shape.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// TestShape_NumElements tests element counting, batch dim excluded.
func TestShape_NumElements(t *testing.T) {
	if got := (Shape{DimNone, 7, 7, 512}).NumElements(); got != 25088 {
		t.Errorf("NumElements() = %d, want 25088", got)
	}
	if got := (Shape{3, 3, 3, 64}).NumElements(); got != 1728 {
		t.Errorf("NumElements() = %d, want 1728", got)
	}
	if got := (Shape{}).NumElements(); got != 1 {
		t.Errorf("scalar NumElements() = %d, want 1", got)
	}
}

// TestShape_Validate tests dimension validation.
func TestShape_Validate(t *testing.T) {
	if err := (Shape{DimNone, 224, 224, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{0, 3}).Validate(); err == nil {
		t.Error("expected error for zero dimension, got nil")
	}
	if err := (Shape{3, -2}).Validate(); err == nil {
		t.Error("expected error for negative dimension, got nil")
	}
}

// TestShape_EqualClone tests equality and copying.
func TestShape_EqualClone(t *testing.T) {
	s := Shape{DimNone, 224, 224, 3}

	if !s.Equal(Shape{DimNone, 224, 224, 3}) {
		t.Error("expected shapes to be equal")
	}
	if s.Equal(Shape{DimNone, 224, 224}) {
		t.Error("expected different ranks to be unequal")
	}
	if s.Equal(Shape{DimNone, 224, 225, 3}) {
		t.Error("expected different dims to be unequal")
	}

	clone := s.Clone()
	if !clone.Equal(s) {
		t.Errorf("clone %v differs from original %v", clone, s)
	}
	clone[1] = 64
	if s[1] != 224 {
		t.Error("mutating clone changed original")
	}
}

// TestShape_WithBatch tests batch-dimension prefixing.
func TestShape_WithBatch(t *testing.T) {
	got := Shape{224, 224, 3}.WithBatch()
	want := Shape{DimNone, 224, 224, 3}
	if !got.Equal(want) {
		t.Errorf("WithBatch() = %v, want %v", got, want)
	}
}

// TestDataType_String tests dtype naming.
func TestDataType_String(t *testing.T) {
	if got := Float32.String(); got != "float32" {
		t.Errorf("Float32.String() = %q, want %q", got, "float32")
	}
	if got := Uint8.String(); got != "uint8" {
		t.Errorf("Uint8.String() = %q, want %q", got, "uint8")
	}
	if Float32.Size() != 4 || Float64.Size() != 8 || Bool.Size() != 1 {
		t.Error("unexpected dtype byte sizes")
	}
}
