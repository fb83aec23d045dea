package rayaabb

import "math"

// Per-axis sign codes, stored in two bits of the classification.
const (
	signNegative uint8 = 0
	signZero     uint8 = 1
	signPositive uint8 = 2
)

// ClassificationCount is the size of the dispatch table; packed codes are
// always below it.
const ClassificationCount = 43

// Sign returns -1, 0 or +1. Zero (either sign) and NaN both give 0, any other
// value takes the sign of its IEEE sign bit.
func Sign(v float64) int {
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	return 1 - int(math.Float64bits(v)>>63)<<1
}

// Classify packs the signs of a direction as (sz+1)<<4 | (sy+1)<<2 | (sx+1).
func Classify(dirX, dirY, dirZ float64) uint8 {
	return uint8((Sign(dirZ)+1)<<4 | (Sign(dirY)+1)<<2 | (Sign(dirX) + 1))
}

// ClassificationOf returns the code of a sign triple, each in {-1, 0, 1}.
func ClassificationOf(signX, signY, signZ int) uint8 {
	return uint8((signZ+1)<<4 | (signY+1)<<2 | (signX + 1))
}

type testFunc func(r *RayAabIntersection, minX, minY, minZ, maxX, maxY, maxZ float64) bool

// never answers for codes no sign triple can produce.
func never(*RayAabIntersection, float64, float64, float64, float64, float64, float64) bool {
	return false
}

// table maps every packed code to its test. Letters name the sign of x, y
// then z: m negative, o zero, p positive.
var table = func() (t [ClassificationCount]testFunc) {
	for i := range t {
		t[i] = never
	}

	t[0] = (*RayAabIntersection).mmm
	t[1] = (*RayAabIntersection).omm
	t[2] = (*RayAabIntersection).pmm
	t[4] = (*RayAabIntersection).mom
	t[5] = (*RayAabIntersection).oom
	t[6] = (*RayAabIntersection).pom
	t[8] = (*RayAabIntersection).mpm
	t[9] = (*RayAabIntersection).opm
	t[10] = (*RayAabIntersection).ppm

	t[16] = (*RayAabIntersection).mmo
	t[17] = (*RayAabIntersection).omo
	t[18] = (*RayAabIntersection).pmo
	t[20] = (*RayAabIntersection).moo
	t[21] = (*RayAabIntersection).ooo
	t[22] = (*RayAabIntersection).poo
	t[24] = (*RayAabIntersection).mpo
	t[25] = (*RayAabIntersection).opo
	t[26] = (*RayAabIntersection).ppo

	t[32] = (*RayAabIntersection).mmp
	t[33] = (*RayAabIntersection).omp
	t[34] = (*RayAabIntersection).pmp
	t[36] = (*RayAabIntersection).mop
	t[37] = (*RayAabIntersection).oop
	t[38] = (*RayAabIntersection).pop
	t[40] = (*RayAabIntersection).mpp
	t[41] = (*RayAabIntersection).opp
	t[42] = (*RayAabIntersection).ppp

	return t
}()

func dispatch(classification uint8) testFunc {
	if int(classification) >= len(table) {
		return never
	}
	return table[classification]
}

// Reachable reports whether a packed code belongs to a sign triple.
func Reachable(classification uint8) bool {
	for i := 0; i < 3; i++ {
		if (classification>>(2*i))&3 == 3 {
			return false
		}
	}
	return classification < ClassificationCount
}
