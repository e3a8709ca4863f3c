package scene

import "testing"

func TestGenerateBuildingsCoversCanvas(t *testing.T) {
	const width = 200.0
	rng := NewRand(DefaultSeed)
	buildings := GenerateBuildings(rng, width)

	if len(buildings) == 0 {
		t.Fatal("no buildings generated")
	}
	if first := buildings[0]; first.X != -skylineMargin {
		t.Errorf("first building starts at %v, want %v", first.X, -float64(skylineMargin))
	}

	// Placement advances by at most 1.1 times the building width, so
	// the silhouette can never leave a wider gap.
	for i := 0; i < len(buildings)-1; i++ {
		cur := buildings[i]
		next := buildings[i+1]
		if next.X <= cur.X {
			t.Fatalf("building %d does not advance: %v -> %v", i, cur.X, next.X)
		}
		if maxAdvance := cur.Width * 1.1; next.X-cur.X > maxAdvance+1e-9 {
			t.Errorf("gap after building %d is %v, exceeds %v", i, next.X-cur.X, maxAdvance)
		}
	}

	// The loop only stops once the next start would pass the right
	// margin, so the last building reaches past it.
	last := buildings[len(buildings)-1]
	if last.X+last.Width*1.1 < width+skylineMargin {
		t.Errorf("skyline ends at %v, short of %v", last.X+last.Width*1.1, width+skylineMargin)
	}
}

func TestGenerateBuildingsDimensionBounds(t *testing.T) {
	rng := NewRand(3)
	for _, b := range GenerateBuildings(rng, 2000) {
		if b.Kind == KindMegablock {
			if b.Width < 60 || b.Width >= maxBuildingWidth {
				t.Errorf("megablock width %v out of range", b.Width)
			}
		} else if b.Width < 18 || b.Width >= 55 {
			t.Errorf("width %v out of range for kind %v", b.Width, b.Kind)
		}
		if b.Height < 40 || b.Height >= 350 {
			t.Errorf("height %v out of range for kind %v", b.Height, b.Kind)
		}
	}
}

func TestGenerateBuildingsDeterministic(t *testing.T) {
	a := GenerateBuildings(NewRand(42), 500)
	b := GenerateBuildings(NewRand(42), 500)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("building %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
