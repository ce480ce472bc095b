package heightfield

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	const maxHeight = 20

	tests := []struct {
		height float64
		want   Band
	}{
		{-3, BandWater},
		{0, BandWater},
		{4.99, BandWater},
		{5, BandGrass},
		{7.99, BandGrass},
		{8, BandDirt},
		{11.99, BandDirt},
		{12, BandRock},
		{16.99, BandRock},
		{17, BandSnow},
		{20, BandSnow},
		{35, BandSnow},
	}

	for _, tt := range tests {
		if got := Classify(tt.height, maxHeight); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.height, maxHeight, got, tt.want)
		}
	}
}

func TestClassifyRatioBoundaries(t *testing.T) {
	tests := []struct {
		r    float64
		want Band
	}{
		{0.25 * 0.999999, BandWater},
		{0.25, BandGrass},
		{0.40, BandDirt},
		{0.60, BandRock},
		{0.85, BandSnow},
	}
	for _, tt := range tests {
		if got := DefaultClassifier.Ratio(tt.r); got != tt.want {
			t.Errorf("Ratio(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestNewClassifierRejectsUnsortedTable(t *testing.T) {
	_, err := NewClassifier([]Threshold{
		{Below: 0.5, Band: BandWater},
		{Below: 0.5, Band: BandGrass},
	}, BandSnow)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestBandString(t *testing.T) {
	if got := BandDirt.String(); got != "dirt" {
		t.Errorf("BandDirt.String() = %q, want dirt", got)
	}
	if got := Band(9).String(); got != "band(9)" {
		t.Errorf("Band(9).String() = %q, want band(9)", got)
	}
}

func TestBandJSONUsesNames(t *testing.T) {
	data, err := json.Marshal([]Band{BandWater, BandSnow, BandDirt})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `["water","snow","dirt"]` {
		t.Fatalf("json = %s", data)
	}

	var got []Band
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != BandWater || got[1] != BandSnow || got[2] != BandDirt {
		t.Errorf("decoded = %v", got)
	}

	if err := json.Unmarshal([]byte(`["lava"]`), &got); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown name err = %v, want ErrInvalidArgument", err)
	}
	if _, err := json.Marshal([]Band{Band(9)}); err == nil {
		t.Error("expected error marshaling unknown band")
	}
}

func TestBandColor(t *testing.T) {
	if c := BandWater.Color(); c.B != 255 || c.R != 0 || c.G != 0 {
		t.Errorf("water colour = %v, want pure blue", c)
	}
	if c := BandSnow.Color(); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("snow colour = %v, want white", c)
	}
}

func TestTextureBlend(t *testing.T) {
	tests := []struct {
		r    float64
		want Blend
	}{
		{0, Blend{Dirt: 1}},
		{0.3, Blend{Grass: 1, Dirt: 0.2}},
		{0.49, Blend{Grass: 1, Dirt: 0.2}},
		{0.5, Blend{Grass: 0.3, Dirt: 0.4, Rock: 1}},
		{0.75, Blend{Dirt: 0.3, Rock: 1}},
		{1, Blend{Dirt: 0.3, Rock: 1}},
	}
	for _, tt := range tests {
		if got := TextureBlend(tt.r); got != tt.want {
			t.Errorf("TextureBlend(%v) = %+v, want %+v", tt.r, got, tt.want)
		}
	}
}
