package geom

import "testing"

func TestGridOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []GridOption
		want float64
	}{
		{"default", nil, defaultGridMaxDistance},
		{"custom", []GridOption{WithMaxDistance(8)}, 8},
		{"zero keeps default", []GridOption{WithMaxDistance(0)}, defaultGridMaxDistance},
		{"negative keeps default", []GridOption{WithMaxDistance(-3)}, defaultGridMaxDistance},
		{"last wins", []GridOption{WithMaxDistance(2), WithMaxDistance(5)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultGridOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if o.maxDistance != tt.want {
				t.Errorf("maxDistance = %v, want %v", o.maxDistance, tt.want)
			}
		})
	}
}

func TestCurveOptions(t *testing.T) {
	o := defaultCurveOptions()
	if o.entries != 10 || o.detail != 10 {
		t.Fatalf("defaults = %+v, want 10/10", o)
	}

	WithEntries(32)(&o)
	WithDetail(3)(&o)
	if o.entries != 32 || o.detail != 3 {
		t.Errorf("after options = %+v, want 32/3", o)
	}

	WithEntries(0)(&o)
	WithDetail(-1)(&o)
	if o.entries != 32 || o.detail != 3 {
		t.Errorf("invalid values changed options: %+v", o)
	}
}
