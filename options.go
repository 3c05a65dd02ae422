package rast

// DrawOption configures a single Draw call.
//
// Example:
//
//	var st rast.Stats
//	rast.Draw(frame, prog, verts, rast.WithCullDegenerate(), rast.WithStats(&st))
type DrawOption func(*drawOptions)

// drawOptions holds optional configuration for Draw.
type drawOptions struct {
	cullDegenerate bool
	stats          *Stats
}

// defaultDrawOptions returns the options Draw uses when none are given.
func defaultDrawOptions() drawOptions {
	return drawOptions{
		cullDegenerate: false, // shade degenerate triangles like any other
		stats:          nil,
	}
}

// WithCullDegenerate skips triangles whose projected area is zero (or not
// finite) instead of shading them.
//
// By default such triangles are rasterized like any other: the pixels they
// cover, typically only those lying exactly on the collapsed edge, reach the
// fragment stage with NaN or infinite weights. Culling changes nothing for
// triangles with a positive area.
func WithCullDegenerate() DrawOption {
	return func(o *drawOptions) {
		o.cullDegenerate = true
	}
}

// WithStats records the counters of the Draw call into st.
// st is overwritten, not accumulated.
func WithStats(st *Stats) DrawOption {
	return func(o *drawOptions) {
		o.stats = st
	}
}
