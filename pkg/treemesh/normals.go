package treemesh

import "github.com/go-gl/mathgl/mgl32"

// computeNormals fills FaceNormals and Normals. Each vertex normal is the
// normalized sum of the unit normals of every triangle that uses it.
func computeNormals(m *Mesh) {
	m.FaceNormals = make([]mgl32.Vec3, m.TriangleCount())
	m.Normals = make([]mgl32.Vec3, len(m.Positions))

	for t := range m.FaceNormals {
		tri := m.Triangle(t)
		a := m.Positions[tri[0]]
		b := m.Positions[tri[1]]
		c := m.Positions[tri[2]]

		n := normalize(b.Sub(a).Cross(c.Sub(a)))
		m.FaceNormals[t] = n

		for _, idx := range tri {
			m.Normals[idx] = m.Normals[idx].Add(n)
		}
	}

	for i := range m.Normals {
		m.Normals[i] = normalize(m.Normals[i])
	}
}

// normalize returns a unit vector, or the zero vector for degenerate input.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-12 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
