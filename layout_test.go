package gpubytes

import "testing"

func TestLayoutString(t *testing.T) {
	tests := []struct {
		layout Layout
		want   string
	}{
		{LayoutStd140, "std140"},
		{LayoutStd430, "std430"},
		{Layout(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.layout.String(); got != tt.want {
			t.Errorf("Layout(%d).String() = %q, want %q", tt.layout, got, tt.want)
		}
	}
}
