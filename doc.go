// Package outline implements an editable glyph outline model: contours of
// on-curve and off-curve points, with derived segment and bPoint views,
// affine transformations, winding queries and interpolation support.
//
// A [Contour] owns a flat ordered list of points, which is the single source
// of truth. The segment view groups each run of off-curve points with the
// on-curve point that terminates it, and the bPoint view re-expresses
// eligible on-curve points as an anchor with relative handle vectors. Both
// views are recomputed from the point list on every access and translate
// their mutations back into point list edits.
//
// Geometry (curve evaluation, bounding boxes, winding, affine matrices)
// lives in the geom subpackage.
package outline
