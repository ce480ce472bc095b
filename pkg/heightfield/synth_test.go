package heightfield

import (
	"errors"
	"math"
	"testing"

	"github.com/OCharnyshevich/heightfield/pkg/heightfield/noise"
)

var defaultParams = NoiseParameters{Scale: 0.1, Octaves: 6, Persistence: 0.7, Lacunarity: 2.8}

func constant(v float64) noise.Source {
	return noise.Func(func(_, _ float64) float64 { return v })
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSynthesizeShape(t *testing.T) {
	s := NewSynthesizer(noise.NewSimplex(1))

	for _, dims := range [][2]int{{1, 1}, {3, 7}, {10, 4}, {100, 100}} {
		w, l := dims[0], dims[1]
		g, err := s.Synthesize(w, l, 20, defaultParams)
		if err != nil {
			t.Fatalf("Synthesize(%d,%d): %v", w, l, err)
		}
		if g.Len() != (w+1)*(l+1) {
			t.Errorf("Len() = %d, want %d", g.Len(), (w+1)*(l+1))
		}
		if _, err := g.Height(w, l); err != nil {
			t.Errorf("Height(%d,%d) on far corner: %v", w, l, err)
		}
		if _, err := g.Height(w+1, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Height(%d,0) err = %v, want ErrOutOfBounds", w+1, err)
		}
		if _, err := g.Band(0, -1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Band(0,-1) err = %v, want ErrOutOfBounds", err)
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	g1, err := NewSynthesizer(noise.NewSimplex(42)).Synthesize(40, 30, 20, defaultParams)
	if err != nil {
		t.Fatal(err)
	}
	g2, _ := NewSynthesizer(noise.NewSimplex(42)).Synthesize(40, 30, 20, defaultParams)
	g3, _ := NewSynthesizer(noise.NewSimplex(42), WithWorkers(4)).Synthesize(40, 30, 20, defaultParams)

	h1, h2, h3 := g1.Heights(), g2.Heights(), g3.Heights()
	b1, b3 := g1.Bands(), g3.Bands()
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("sample %d differs between runs: %v vs %v", i, h1[i], h2[i])
		}
		if h1[i] != h3[i] || b1[i] != b3[i] {
			t.Fatalf("sample %d differs between sequential and parallel: %v vs %v", i, h1[i], h3[i])
		}
	}
}

func TestSynthesizeHeightsNonNegative(t *testing.T) {
	g, err := NewSynthesizer(noise.NewSimplex(7)).Synthesize(50, 50, 20, defaultParams)
	if err != nil {
		t.Fatal(err)
	}
	for i, h := range g.Heights() {
		if h < 0 {
			t.Fatalf("sample %d height %v below 0", i, h)
		}
	}
}

func TestSynthesizeHeightsExceedMaxAtFullNoise(t *testing.T) {
	g, err := NewSynthesizer(constant(1)).Synthesize(2, 2, 20, defaultParams)
	if err != nil {
		t.Fatal(err)
	}

	y, amp, maxAmp := 0.0, 2.0, 1.0
	for i := 0; i < defaultParams.Octaves; i++ {
		y += amp
		amp *= defaultParams.Persistence
		maxAmp += amp
	}
	want := y / maxAmp * 20
	if want <= 20 {
		t.Fatalf("expected bound %v to exceed max height", want)
	}

	for i, h := range g.Heights() {
		if !approxEqual(h, want) {
			t.Fatalf("sample %d height = %v, want %v", i, h, want)
		}
	}
}

func TestSynthesizeInvalidArguments(t *testing.T) {
	s := NewSynthesizer(constant(0.5))

	tests := []struct {
		name      string
		w, l      int
		maxHeight float64
		params    NoiseParameters
	}{
		{"zero width", 0, 10, 20, defaultParams},
		{"negative length", 10, -1, 20, defaultParams},
		{"zero max height", 10, 10, 0, defaultParams},
		{"nan max height", 10, 10, math.NaN(), defaultParams},
		{"zero octaves", 10, 10, 20, NoiseParameters{Scale: 0.1, Octaves: 0, Persistence: 0.5, Lacunarity: 2}},
		{"zero persistence", 10, 10, 20, NoiseParameters{Scale: 0.1, Octaves: 3, Persistence: 0, Lacunarity: 2}},
		{"persistence above one", 10, 10, 20, NoiseParameters{Scale: 0.1, Octaves: 3, Persistence: 1.5, Lacunarity: 2}},
		{"zero lacunarity", 10, 10, 20, NoiseParameters{Scale: 0.1, Octaves: 3, Persistence: 0.5, Lacunarity: 0}},
		{"zero scale", 10, 10, 20, NoiseParameters{Scale: 0, Octaves: 3, Persistence: 0.5, Lacunarity: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := s.Synthesize(tt.w, tt.l, tt.maxHeight, tt.params)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
			if g != nil {
				t.Fatal("expected no grid on invalid arguments")
			}
		})
	}
}

func TestSynthesizeOctaveAccumulation(t *testing.T) {
	tests := []struct {
		name   string
		params NoiseParameters
		want   float64
	}{
		// y = 0.5*2 = 1; maxAmplitude = 1 + 2*1 = 3.
		{"single octave", NoiseParameters{Scale: 1, Octaves: 1, Persistence: 1, Lacunarity: 2}, 30.0 / 3},
		// y = 0.5*2 + 0.5*1 = 1.5; maxAmplitude = 1 + 1 + 0.5 = 2.5.
		{"two octaves", NoiseParameters{Scale: 1, Octaves: 2, Persistence: 0.5, Lacunarity: 2}, 1.5 / 2.5 * 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewSynthesizer(constant(0.5)).Synthesize(2, 2, 30, tt.params)
			if err != nil {
				t.Fatal(err)
			}
			for i, h := range g.Heights() {
				if !approxEqual(h, tt.want) {
					t.Fatalf("sample %d height = %v, want %v", i, h, tt.want)
				}
			}
		})
	}
}

func TestSynthesizeSamplingCoordinates(t *testing.T) {
	type point struct{ x, y float64 }
	var calls []point
	src := noise.Func(func(x, y float64) float64 {
		calls = append(calls, point{x, y})
		return 0.5
	})

	p := NoiseParameters{Scale: 0.5, Octaves: 2, Persistence: 0.5, Lacunarity: 3}
	if _, err := NewSynthesizer(src).Synthesize(1, 1, 10, p); err != nil {
		t.Fatal(err)
	}

	// Row-major, z outer: (0,0) (1,0) (0,1) (1,1), two octaves each.
	want := []point{
		{0, 0}, {0, 0},
		{0.5, 0}, {1.5, 0},
		{0, 0.5}, {0, 1.5},
		{0.5, 0.5}, {1.5, 1.5},
	}
	if len(calls) != len(want) {
		t.Fatalf("noise sampled %d times, want %d", len(calls), len(want))
	}
	for i := range want {
		if !approxEqual(calls[i].x, want[i].x) || !approxEqual(calls[i].y, want[i].y) {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestSynthesizeNegativeNoiseFloorsToWater(t *testing.T) {
	// This table would put a zero height in grass; the floor must not consult it.
	c := MustClassifier([]Threshold{{Below: -1, Band: BandWater}}, BandGrass)
	if got := c.Classify(0, 20); got != BandGrass {
		t.Fatalf("precondition: Classify(0) = %v, want grass", got)
	}

	g, err := NewSynthesizer(constant(-1), WithClassifier(c)).Synthesize(3, 3, 20, defaultParams)
	if err != nil {
		t.Fatal(err)
	}
	for z := 0; z <= 3; z++ {
		for x := 0; x <= 3; x++ {
			h, _ := g.Height(x, z)
			b, _ := g.Band(x, z)
			if h != 0 || b != BandWater {
				t.Fatalf("(%d,%d) = %v/%v, want 0/water", x, z, h, b)
			}
		}
	}
}

func TestSettle(t *testing.T) {
	c := MustClassifier([]Threshold{{Below: -1, Band: BandWater}}, BandGrass)

	tests := []struct {
		name     string
		y        float64
		wantH    float64
		wantBand Band
	}{
		{"negative is floored and forced to water", -0.001, 0, BandWater},
		{"very negative", -50, 0, BandWater},
		{"zero runs the classifier", 0, 0, BandGrass},
		{"positive runs the classifier", 7, 7, BandGrass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, b := settle(tt.y, 20, c)
			if h != tt.wantH || b != tt.wantBand {
				t.Errorf("settle(%v) = %v/%v, want %v/%v", tt.y, h, b, tt.wantH, tt.wantBand)
			}
		})
	}
}
