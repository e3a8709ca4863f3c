package scene

import "testing"

func TestRandSameSeedSameSequence(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.Uniform(-5, 5) != b.Uniform(-5, 5) {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRandDifferentSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestUniformRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(18, 55)
		if v < 18 || v >= 55 {
			t.Fatalf("Uniform(18, 55) = %v out of range", v)
		}
	}
}

func TestBooleanProbabilityExtremes(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 100; i++ {
		if r.Boolean(1) != true {
			t.Fatal("Boolean(1) returned false")
		}
		if r.Boolean(0) != false {
			t.Fatal("Boolean(0) returned true")
		}
	}
}

func TestPickDeterministic(t *testing.T) {
	choices := []string{"tower", "dome", "spire"}
	a := NewRand(9)
	b := NewRand(9)
	for i := 0; i < 50; i++ {
		if Pick(a, choices) != Pick(b, choices) {
			t.Fatalf("Pick diverged at step %d", i)
		}
	}
}
