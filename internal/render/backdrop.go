package render

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/tspviz/routeplot/schema"
)

// boundPad widens every polygon bound so that points and axis-parallel
// segments still get a box with non-zero extent.
const boundPad = 1e-9

// backdropEntry wraps a backdrop polygon for R-tree storage.
type backdropEntry struct {
	order int
	seq   schema.PointSequence
	rect  rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (e *backdropEntry) Bounds() rtreego.Rect {
	return e.rect
}

// backdropIndex answers which backdrop polygons touch a viewing window.
type backdropIndex struct {
	tree  *rtreego.Rtree
	bound orb.Bound
	size  int
}

// newBackdropIndex bulk loads the non-empty polygons into an R-tree.
func newBackdropIndex(polys []schema.PointSequence) *backdropIndex {
	objs := make([]rtreego.Spatial, 0, len(polys))
	var (
		bound orb.Bound
		found bool
	)
	for i, seq := range polys {
		if len(seq) == 0 {
			continue
		}
		b := seq.Bound()
		if !found {
			bound, found = b, true
		} else {
			bound = bound.Union(b)
		}
		objs = append(objs, &backdropEntry{order: i, seq: seq, rect: toRect(b)})
	}
	return &backdropIndex{
		tree:  rtreego.NewTree(2, 25, 50, objs...),
		bound: bound,
		size:  len(objs),
	}
}

// Visible returns the polygons whose bounds intersect the window, in their
// original file order.
func (ix *backdropIndex) Visible(window orb.Bound) []schema.PointSequence {
	results := ix.tree.SearchIntersect(toRect(window))
	entries := make([]*backdropEntry, 0, len(results))
	for _, item := range results {
		entries = append(entries, item.(*backdropEntry))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})

	visible := make([]schema.PointSequence, 0, len(entries))
	for _, e := range entries {
		visible = append(visible, e.seq)
	}
	return visible
}

// Window fills any axis missing from limits with the backdrop's own extent.
func (ix *backdropIndex) Window(limits schema.Limits) orb.Bound {
	w := ix.bound
	if limits.X != nil {
		w.Min[0], w.Max[0] = limits.X.Min, limits.X.Max
	}
	if limits.Y != nil {
		w.Min[1], w.Max[1] = limits.Y.Min, limits.Y.Max
	}
	return w
}

// toRect converts an orb bound to a padded rtreego rectangle.
func toRect(b orb.Bound) rtreego.Rect {
	b = b.Pad(boundPad)
	// NewRectFromPoints only fails on a dimension mismatch.
	r, _ := rtreego.NewRectFromPoints(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		rtreego.Point{b.Max.X(), b.Max.Y()},
	)
	return r
}
