package rast

// Stats describes the work done by one Draw call.
type Stats struct {
	// Triangles is the number of triangles assembled from the vertex list.
	Triangles int

	// Degenerate counts triangles with zero or non-finite projected area.
	Degenerate int

	// Culled counts degenerate triangles skipped by WithCullDegenerate.
	Culled int

	// Fragments is the number of fragment stage invocations.
	Fragments int
}

// Draw rasterizes vertices into frame using shader.
//
// The vertex stage runs on a copy of every vertex; vertices itself is not
// modified. Consecutive triples of shaded vertices form triangles in input
// order and a trailing partial triangle is ignored. Each triangle's bounding
// box is clipped to the NDC cube and every pixel center inside it is tested
// for coverage. Covered pixels get the fragment stage's color for their
// barycentric coordinate, replacing whatever was there: triangles later in
// the list win where they overlap earlier ones. No depth test is performed
// and the frame's depth values are never touched.
//
// Draw is synchronous and deterministic. frame is not retained.
func Draw(frame *Frame, shader ShaderProgram, vertices []Vector3, opts ...DrawOption) {
	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shaded := make([]Vector3, len(vertices))
	for i, v := range vertices {
		shaded[i] = shader.Vertex(v)
	}

	tris := assembleTriangles(shaded)
	vp := NewViewport(frame.Width(), frame.Height())

	st := Stats{Triangles: len(tris)}
	shadedDegenerate := 0
	for _, t := range tris {
		if t.degenerate() {
			st.Degenerate++
			if o.cullDegenerate {
				st.Culled++
				continue
			}
			n := rasterize(frame, shader, vp, t)
			if n > 0 {
				shadedDegenerate++
			}
			st.Fragments += n
			continue
		}
		st.Fragments += rasterize(frame, shader, vp, t)
	}

	if o.stats != nil {
		*o.stats = st
	}

	log := Logger()
	if shadedDegenerate > 0 {
		log.Warn("rast: degenerate triangles shaded with non-finite weights",
			"triangles", shadedDegenerate)
	}
	log.Debug("rast: draw",
		"vertices", len(vertices),
		"triangles", st.Triangles,
		"degenerate", st.Degenerate,
		"culled", st.Culled,
		"fragments", st.Fragments)
}

// rasterize scans the pixels of t's clipped bounding box and shades the
// covered ones. It returns the number of fragments shaded.
func rasterize(frame *Frame, shader FragmentShader, vp Viewport, t triangle) int {
	b := t.boundingBox().Intersect(NDCBox)

	startX, startY := vp.Bound(b.Min.X(), b.Min.Y())
	endX, endY := vp.Bound(b.Max.X(), b.Max.Y()) // one past the last pixel

	n := 0
	for y := startY; y < endY; y++ {
		row := frame.color[y*frame.width : (y+1)*frame.width]
		for x := startX; x < endX; x++ {
			p := vp.CenterNDC(x, y)
			if !t.containsPoint2D(p) {
				continue
			}
			row[x] = shader.Fragment(t.barycentric(p))
			n++
		}
	}
	return n
}
