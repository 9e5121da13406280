package assets

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// MeshData is an indexed triangle list with per-vertex normals
type MeshData struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// Empty reports whether the mesh has no triangles
func (m *MeshData) Empty() bool {
	return len(m.Indices) < 3
}

// Interleaved returns position and normal pairs as a flat float slice
func (m *MeshData) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*6)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// extractMesh merges every triangle primitive in the document into one mesh
func extractMesh(doc *gltf.Document) (*MeshData, error) {
	mesh := &MeshData{}

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			posAcr, err := accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q positions: %w", m.Name, err)
			}
			positions, err := modeler.ReadPosition(doc, posAcr, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to read positions of mesh %q: %w", m.Name, err)
			}

			var indices []uint32
			if prim.Indices != nil {
				idxAcr, err := accessor(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q indices: %w", m.Name, err)
				}
				indices, err = modeler.ReadIndices(doc, idxAcr, nil)
				if err != nil {
					return nil, fmt.Errorf("failed to read indices of mesh %q: %w", m.Name, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			base := uint32(len(mesh.Positions))
			for _, p := range positions {
				mesh.Positions = append(mesh.Positions, mgl32.Vec3(p))
			}
			for _, i := range indices {
				if int(i) >= len(positions) {
					return nil, fmt.Errorf("mesh %q: index %d out of range for %d vertices", m.Name, i, len(positions))
				}
				mesh.Indices = append(mesh.Indices, base+i)
			}
		}
	}

	mesh.Normals = ComputeNormals(mesh.Positions, mesh.Indices)
	return mesh, nil
}

// ErrBadAccessor is returned when a primitive refers to a missing accessor
var ErrBadAccessor = errors.New("accessor index out of range")

func accessor(doc *gltf.Document, index uint32) (*gltf.Accessor, error) {
	if int(index) >= len(doc.Accessors) || doc.Accessors[index] == nil {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadAccessor, index, len(doc.Accessors))
	}
	return doc.Accessors[index], nil
}

// ComputeNormals returns area-weighted vertex normals for a triangle list
func ComputeNormals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			continue
		}
		face := positions[b].Sub(positions[a]).Cross(positions[c].Sub(positions[a]))
		normals[a] = normals[a].Add(face)
		normals[b] = normals[b].Add(face)
		normals[c] = normals[c].Add(face)
	}

	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		} else {
			normals[i] = mgl32.Vec3{0, 1, 0}
		}
	}
	return normals
}

// BoxMesh returns a box with the given half extents, with flat faces
func BoxMesh(half mgl32.Vec3) *MeshData {
	faces := []struct {
		normal mgl32.Vec3
		u, v   mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	mesh := &MeshData{}
	for _, f := range faces {
		base := uint32(len(mesh.Positions))
		for _, corner := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := f.normal.Add(f.u.Mul(corner[0])).Add(f.v.Mul(corner[1]))
			mesh.Positions = append(mesh.Positions, mgl32.Vec3{p[0] * half[0], p[1] * half[1], p[2] * half[2]})
			mesh.Normals = append(mesh.Normals, f.normal)
		}
		mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return mesh
}

// SphereMesh returns a UV sphere. stacks and slices below 2 and 3 are raised
// to those minimums.
func SphereMesh(radius float32, stacks, slices int) *MeshData {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	mesh := &MeshData{}
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
			mesh.Positions = append(mesh.Positions, n.Mul(radius))
			mesh.Normals = append(mesh.Normals, n)
		}
	}

	row := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := i*row + j
			b := a + row
			mesh.Indices = append(mesh.Indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return mesh
}

// PlaneMesh returns a square in the XZ plane facing +Y
func PlaneMesh(size float32) *MeshData {
	h := size / 2
	up := mgl32.Vec3{0, 1, 0}
	return &MeshData{
		Positions: []mgl32.Vec3{{-h, 0, -h}, {h, 0, -h}, {h, 0, h}, {-h, 0, h}},
		Normals:   []mgl32.Vec3{up, up, up, up},
		Indices:   []uint32{0, 2, 1, 0, 3, 2},
	}
}
