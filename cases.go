package rayaabb

// Each test below is specialised for one sign triple of the direction.
// An axis the ray does not move along only needs the origin inside the slab.
// Each pair of moving axes needs the projected line to cross the box
// rectangle on that plane: two comparisons against the corners picked by the
// signs. Slopes involving a zero component are never read.

// mmm: all components negative.
func (r *RayAabIntersection) mmm(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*minX-maxY+r.cXY <= 0 &&
		r.sYX*minY-maxX+r.cYX <= 0 &&
		r.sZY*minZ-maxY+r.cZY <= 0 &&
		r.sYZ*minY-maxZ+r.cYZ <= 0 &&
		r.sXZ*minX-maxZ+r.cXZ <= 0 &&
		r.sZX*minZ-maxX+r.cZX <= 0
}

func (r *RayAabIntersection) omm(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.sZY*minZ-maxY+r.cZY <= 0 &&
		r.sYZ*minY-maxZ+r.cYZ <= 0
}

func (r *RayAabIntersection) pmm(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*maxX-maxY+r.cXY <= 0 &&
		r.sYX*minY-minX+r.cYX >= 0 &&
		r.sZY*minZ-maxY+r.cZY <= 0 &&
		r.sYZ*minY-maxZ+r.cYZ <= 0 &&
		r.sXZ*maxX-maxZ+r.cXZ <= 0 &&
		r.sZX*minZ-minX+r.cZX >= 0
}

func (r *RayAabIntersection) mom(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originY >= minY &&
		r.originY <= maxY &&
		r.sXZ*minX-maxZ+r.cXZ <= 0 &&
		r.sZX*minZ-maxX+r.cZX <= 0
}

func (r *RayAabIntersection) oom(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.originY >= minY &&
		r.originY <= maxY
}

func (r *RayAabIntersection) pom(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originY >= minY &&
		r.originY <= maxY &&
		r.sXZ*maxX-maxZ+r.cXZ <= 0 &&
		r.sZX*minZ-minX+r.cZX >= 0
}

func (r *RayAabIntersection) mpm(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*minX-minY+r.cXY >= 0 &&
		r.sYX*maxY-maxX+r.cYX <= 0 &&
		r.sZY*minZ-minY+r.cZY >= 0 &&
		r.sYZ*maxY-maxZ+r.cYZ <= 0 &&
		r.sXZ*minX-maxZ+r.cXZ <= 0 &&
		r.sZX*minZ-maxX+r.cZX <= 0
}

func (r *RayAabIntersection) opm(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.sZY*minZ-minY+r.cZY >= 0 &&
		r.sYZ*maxY-maxZ+r.cYZ <= 0
}

func (r *RayAabIntersection) ppm(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*maxX-minY+r.cXY >= 0 &&
		r.sYX*maxY-minX+r.cYX >= 0 &&
		r.sZY*minZ-minY+r.cZY >= 0 &&
		r.sYZ*maxY-maxZ+r.cYZ <= 0 &&
		r.sXZ*maxX-maxZ+r.cXZ <= 0 &&
		r.sZX*minZ-minX+r.cZX >= 0
}

func (r *RayAabIntersection) mmo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originZ >= minZ &&
		r.originZ <= maxZ &&
		r.sXY*minX-maxY+r.cXY <= 0 &&
		r.sYX*minY-maxX+r.cYX <= 0
}

func (r *RayAabIntersection) omo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.originZ >= minZ &&
		r.originZ <= maxZ
}

func (r *RayAabIntersection) pmo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originZ >= minZ &&
		r.originZ <= maxZ &&
		r.sXY*maxX-maxY+r.cXY <= 0 &&
		r.sYX*minY-minX+r.cYX >= 0
}

func (r *RayAabIntersection) moo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originY >= minY &&
		r.originY <= maxY &&
		r.originZ >= minZ &&
		r.originZ <= maxZ
}

// ooo: a zero direction only meets boxes holding its origin.
func (r *RayAabIntersection) ooo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.originY >= minY &&
		r.originY <= maxY &&
		r.originZ >= minZ &&
		r.originZ <= maxZ
}

func (r *RayAabIntersection) poo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originY >= minY &&
		r.originY <= maxY &&
		r.originZ >= minZ &&
		r.originZ <= maxZ
}

func (r *RayAabIntersection) mpo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originZ >= minZ &&
		r.originZ <= maxZ &&
		r.sXY*minX-minY+r.cXY >= 0 &&
		r.sYX*maxY-maxX+r.cYX <= 0
}

func (r *RayAabIntersection) opo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.originZ >= minZ &&
		r.originZ <= maxZ
}

func (r *RayAabIntersection) ppo(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originZ >= minZ &&
		r.originZ <= maxZ &&
		r.sXY*maxX-minY+r.cXY >= 0 &&
		r.sYX*maxY-minX+r.cYX >= 0
}

func (r *RayAabIntersection) mmp(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*minX-maxY+r.cXY <= 0 &&
		r.sYX*minY-maxX+r.cYX <= 0 &&
		r.sZY*maxZ-maxY+r.cZY <= 0 &&
		r.sYZ*minY-minZ+r.cYZ >= 0 &&
		r.sXZ*minX-minZ+r.cXZ >= 0 &&
		r.sZX*maxZ-maxX+r.cZX <= 0
}

func (r *RayAabIntersection) omp(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.sZY*maxZ-maxY+r.cZY <= 0 &&
		r.sYZ*minY-minZ+r.cYZ >= 0
}

func (r *RayAabIntersection) pmp(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*maxX-maxY+r.cXY <= 0 &&
		r.sYX*minY-minX+r.cYX >= 0 &&
		r.sZY*maxZ-maxY+r.cZY <= 0 &&
		r.sYZ*minY-minZ+r.cYZ >= 0 &&
		r.sXZ*maxX-minZ+r.cXZ >= 0 &&
		r.sZX*maxZ-minX+r.cZX >= 0
}

func (r *RayAabIntersection) mop(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originY >= minY &&
		r.originY <= maxY &&
		r.sXZ*minX-minZ+r.cXZ >= 0 &&
		r.sZX*maxZ-maxX+r.cZX <= 0
}

func (r *RayAabIntersection) oop(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.originY >= minY &&
		r.originY <= maxY
}

func (r *RayAabIntersection) pop(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originY >= minY &&
		r.originY <= maxY &&
		r.sXZ*maxX-minZ+r.cXZ >= 0 &&
		r.sZX*maxZ-minX+r.cZX >= 0
}

func (r *RayAabIntersection) mpp(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*minX-minY+r.cXY >= 0 &&
		r.sYX*maxY-maxX+r.cYX <= 0 &&
		r.sZY*maxZ-minY+r.cZY >= 0 &&
		r.sYZ*maxY-minZ+r.cYZ >= 0 &&
		r.sXZ*minX-minZ+r.cXZ >= 0 &&
		r.sZX*maxZ-maxX+r.cZX <= 0
}

func (r *RayAabIntersection) opp(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.originX >= minX &&
		r.originX <= maxX &&
		r.sZY*maxZ-minY+r.cZY >= 0 &&
		r.sYZ*maxY-minZ+r.cYZ >= 0
}

// ppp: all components positive.
func (r *RayAabIntersection) ppp(minX, minY, minZ, maxX, maxY, maxZ float64) bool {
	return r.sXY*maxX-minY+r.cXY >= 0 &&
		r.sYX*maxY-minX+r.cYX >= 0 &&
		r.sZY*maxZ-minY+r.cZY >= 0 &&
		r.sYZ*maxY-minZ+r.cYZ >= 0 &&
		r.sXZ*maxX-minZ+r.cXZ >= 0 &&
		r.sZX*maxZ-minX+r.cZX >= 0
}
