package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// resolvePlane pushes b out of the plane and removes its approaching velocity
func (w *World) resolvePlane(b, plane *Body, dt float32) {
	normal := plane.Quaternion.Rotate(planeNormal).Normalize()
	distance := b.Position.Sub(plane.Position).Dot(normal)
	depth := b.extentAlong(normal) - distance
	if depth <= 0 {
		return
	}

	b.Position = b.Position.Add(normal.Mul(depth))

	vn := b.Velocity.Dot(normal)
	if vn < 0 {
		b.Velocity = b.Velocity.Sub(normal.Mul(vn * (1 + w.Restitution)))
	}

	// Coulomb friction on the tangential velocity
	tangent := b.Velocity.Sub(normal.Mul(b.Velocity.Dot(normal)))
	speed := tangent.Len()
	if speed == 0 {
		return
	}
	loss := w.Friction * abs(w.Gravity.Dot(normal)) * dt
	if loss >= speed {
		b.Velocity = b.Velocity.Sub(tangent)
		return
	}
	b.Velocity = b.Velocity.Sub(tangent.Mul(loss / speed))
}

// resolveBox pushes b's bounding sphere out of an oriented box
func (w *World) resolveBox(b, box *Body) {
	inv := box.Quaternion.Conjugate()
	local := inv.Rotate(b.Position.Sub(box.Position))
	half := box.Shape.HalfExtents

	closest := mgl32.Vec3{
		mgl32.Clamp(local.X(), -half.X(), half.X()),
		mgl32.Clamp(local.Y(), -half.Y(), half.Y()),
		mgl32.Clamp(local.Z(), -half.Z(), half.Z()),
	}
	radius := b.BoundingRadius()

	var normal mgl32.Vec3
	var depth float32

	delta := local.Sub(closest)
	dist := delta.Len()
	switch {
	case dist > 0:
		if dist >= radius {
			return
		}
		normal = delta.Mul(1 / dist)
		depth = radius - dist
	default:
		// center inside the box: leave through the nearest face
		best := float32(-1)
		for i := 0; i < 3; i++ {
			for _, s := range []float32{1, -1} {
				gap := half[i] - s*local[i]
				if best < 0 || gap < best {
					best = gap
					normal = mgl32.Vec3{}
					normal[i] = s
				}
			}
		}
		depth = best + radius
	}

	worldNormal := box.Quaternion.Rotate(normal)
	b.Position = b.Position.Add(worldNormal.Mul(depth))

	vn := b.Velocity.Dot(worldNormal)
	if vn < 0 {
		b.Velocity = b.Velocity.Sub(worldNormal.Mul(vn * (1 + w.Restitution)))
	}
}

// resolveDynamicPairs separates overlapping dynamic bodies using bounding spheres
func (w *World) resolveDynamicPairs() {
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		if a.Kind != Dynamic {
			continue
		}
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if b.Kind != Dynamic {
				continue
			}

			delta := b.Position.Sub(a.Position)
			dist := delta.Len()
			overlap := a.BoundingRadius() + b.BoundingRadius() - dist
			if overlap <= 0 || dist == 0 {
				continue
			}

			normal := delta.Mul(1 / dist)
			ia, ib := a.InverseMass(), b.InverseMass()
			total := ia + ib
			if total == 0 {
				continue
			}

			a.Position = a.Position.Sub(normal.Mul(overlap * ia / total))
			b.Position = b.Position.Add(normal.Mul(overlap * ib / total))

			approach := b.Velocity.Sub(a.Velocity).Dot(normal)
			if approach >= 0 {
				continue
			}
			impulse := -(1 + w.Restitution) * approach / total
			a.Velocity = a.Velocity.Sub(normal.Mul(impulse * ia))
			b.Velocity = b.Velocity.Add(normal.Mul(impulse * ib))
		}
	}
}
