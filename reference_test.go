package rayaabb

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slab is the textbook per-axis interval test. It returns the parameter range
// [tmin, tmax] shared by all three slabs and whether it is non-empty.
func slab(o, d, min, max [3]float64) (tmin, tmax float64, hit bool) {
	tmin, tmax = math.Inf(-1), math.Inf(1)

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < min[i] || o[i] > max[i] {
				return 0, 0, false
			}
			continue
		}

		t1 := (min[i] - o[i]) / d[i]
		t2 := (max[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	return tmin, tmax, tmin <= tmax
}

func slabLine(o, d, min, max [3]float64) bool {
	_, _, hit := slab(o, d, min, max)
	return hit
}

func slabRay(o, d, min, max [3]float64) bool {
	_, tmax, hit := slab(o, d, min, max)
	return hit && tmax >= 0
}

// Small dyadic values keep every slope, intercept and slab parameter exact,
// so both methods must agree even on touching cases.
func TestAgainstSlab_EverySignTriple(t *testing.T) {
	steps := []float64{0.5, 1, 2}
	coords := []float64{-1.5, -0.5, 0, 0.5, 1, 2.5}
	boxes := [][2][3]float64{
		{{0, 0, 0}, {1, 1, 1}},
		{{-1, -1, -1}, {1, 1, 1}},
		{{1, -2, 0.5}, {2, -1, 1.5}},
		{{-2, 0.5, -1}, {-0.5, 2, 0}},
		{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}},
		{{-4, 3, -4}, {4, 4, 4}},
	}

	r := New()
	checked := 0
	for sz := -1; sz <= 1; sz++ {
		for sy := -1; sy <= 1; sy++ {
			for sx := -1; sx <= 1; sx++ {
				for _, step := range steps {
					d := [3]float64{float64(sx) * step, float64(sy), float64(sz) * 2 / step}
					for _, ox := range coords {
						for _, oy := range coords {
							for _, oz := range coords {
								o := [3]float64{ox, oy, oz}
								r.Set(o[0], o[1], o[2], d[0], d[1], d[2])
								require.Equal(t, ClassificationOf(sx, sy, sz), r.Classification())

								for _, b := range boxes {
									min, max := b[0], b[1]
									line := r.Test(min[0], min[1], min[2], max[0], max[1], max[2])
									ray := r.TestRay(min[0], min[1], min[2], max[0], max[1], max[2])
									if line != slabLine(o, d, min, max) {
										t.Fatalf("line test mismatch: origin %v dir %v box %v..%v: got %v", o, d, min, max, line)
									}
									if ray != slabRay(o, d, min, max) {
										t.Fatalf("ray test mismatch: origin %v dir %v box %v..%v: got %v", o, d, min, max, ray)
									}
									checked++
								}
							}
						}
					}
				}
			}
		}
	}

	assert.Equal(t, 27*3*6*6*6*6, checked)
}

func randomBox(rng *rand.Rand) (min, max [3]float64) {
	for i := 0; i < 3; i++ {
		a := rng.Float64()*20 - 10
		b := rng.Float64()*20 - 10
		min[i], max[i] = math.Min(a, b), math.Max(a, b)
	}
	return min, max
}

// randomDirection keeps every component away from zero so slopes stay
// moderate.
func randomDirection(rng *rand.Rand) (d [3]float64) {
	for i := 0; i < 3; i++ {
		for math.Abs(d[i]) < 0.05 {
			d[i] = rng.Float64()*2 - 1
		}
	}
	return d
}

func TestAgainstSlab_Random(t *testing.T) {
	const cases = 10000
	// Cases whose slab overlap is this thin are left out: the two methods
	// round differently there.
	const margin = 1e-9

	rng := rand.New(rand.NewSource(42))
	r := New()

	hits, skipped := 0, 0
	for i := 0; i < cases; i++ {
		o := [3]float64{rng.Float64()*30 - 15, rng.Float64()*30 - 15, rng.Float64()*30 - 15}
		d := randomDirection(rng)
		min, max := randomBox(rng)

		tmin, tmax, _ := slab(o, d, min, max)
		if math.Abs(tmax-tmin) < margin || math.Abs(tmax) < margin {
			skipped++
			continue
		}

		r.Set(o[0], o[1], o[2], d[0], d[1], d[2])
		line := r.Test(min[0], min[1], min[2], max[0], max[1], max[2])
		if line != slabLine(o, d, min, max) {
			t.Fatalf("case %d: origin %v dir %v box %v..%v: line test = %v", i, o, d, min, max, line)
		}
		ray := r.TestRay(min[0], min[1], min[2], max[0], max[1], max[2])
		if ray != slabRay(o, d, min, max) {
			t.Fatalf("case %d: origin %v dir %v box %v..%v: ray test = %v", i, o, d, min, max, ray)
		}
		if line {
			hits++
		}
	}

	assert.Less(t, skipped, cases/100, "too many borderline cases skipped")
	assert.Greater(t, hits, 0, "random set should contain hits")
	assert.Less(t, hits, cases-skipped, "random set should contain misses")
}

func TestReversedDirection_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	forward, backward := New(), New()

	for i := 0; i < 2000; i++ {
		o := [3]float64{rng.Float64()*10 - 5, rng.Float64()*10 - 5, rng.Float64()*10 - 5}
		d := randomDirection(rng)
		min, max := randomBox(rng)

		tmin, tmax, _ := slab(o, d, min, max)
		if math.Abs(tmax-tmin) < 1e-9 {
			continue
		}

		forward.Set(o[0], o[1], o[2], d[0], d[1], d[2])
		backward.Set(o[0], o[1], o[2], -d[0], -d[1], -d[2])

		a := forward.Test(min[0], min[1], min[2], max[0], max[1], max[2])
		b := backward.Test(min[0], min[1], min[2], max[0], max[1], max[2])
		if a != b {
			t.Fatalf("case %d: origin %v dir %v box %v..%v: forward %v, backward %v", i, o, d, min, max, a, b)
		}
	}
}

func BenchmarkTest(b *testing.B) {
	r := NewRayAabIntersection(-5, -4, -3, 1, 0.8, 0.6)
	hits := 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r.Test(0, 0, 0, 1, 1, 1) {
			hits++
		}
	}
	_ = hits
}

func BenchmarkSet(b *testing.B) {
	r := New()
	for i := 0; i < b.N; i++ {
		r.Set(-5, -4, -3, 1, 0.8, 0.6)
	}
}

func BenchmarkSlabReference(b *testing.B) {
	o := [3]float64{-5, -4, -3}
	d := [3]float64{1, 0.8, 0.6}
	min := [3]float64{0, 0, 0}
	max := [3]float64{1, 1, 1}
	hits := 0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if slabLine(o, d, min, max) {
			hits++
		}
	}
	_ = hits
}
