package scene

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderDeterministic(t *testing.T) {
	params := Params{
		Width:            120,
		Height:           80,
		Seed:             7,
		SkylineBlurSigma: 3,
		SkylineOpacity:   0.85,
	}

	a, err := Render(params)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(params)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("same seed produced different images")
	}
}

func TestRenderSeedChangesOutput(t *testing.T) {
	base := Params{Width: 100, Height: 60, Seed: 1, SkylineBlurSigma: 2, SkylineOpacity: 0.85}
	other := base
	other.Seed = 2

	a, err := Render(base)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(other)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a.Data(), b.Data()) {
		t.Error("different seeds produced identical images")
	}
}

func TestRenderFullyOpaque(t *testing.T) {
	p, err := Render(Params{Width: 64, Height: 48, Seed: 42, SkylineBlurSigma: 2, SkylineOpacity: 0.85})
	if err != nil {
		t.Fatal(err)
	}
	data := p.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 255 {
			t.Fatalf("pixel %d has alpha %d, scene must be opaque", i/4, data[i])
		}
	}
}

func TestRenderInvalidParams(t *testing.T) {
	cases := []struct {
		name   string
		params Params
	}{
		{"zero width", Params{Width: 0, Height: 10, SkylineOpacity: 0.85}},
		{"negative height", Params{Width: 10, Height: -1, SkylineOpacity: 0.85}},
		{"negative blur", Params{Width: 10, Height: 10, SkylineBlurSigma: -1, SkylineOpacity: 0.85}},
		{"opacity above one", Params{Width: 10, Height: 10, SkylineOpacity: 1.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Render(tc.params); !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("Render error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestDefaultParams(t *testing.T) {
	got := DefaultParams()
	want := Params{
		Width:            1800,
		Height:           1200,
		Seed:             42,
		SkylineBlurSigma: 8,
		SkylineOpacity:   0.85,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DefaultParams mismatch (-want +got):\n%s", diff)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
}
