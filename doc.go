// Package rectpack provides a rectangle bin-packing allocator for
// multi-face texture atlases such as cube maps.
//
// # Overview
//
// An [Atlas] manages free space across a fixed number of equally sized
// square surfaces (faces). Each face is tracked by a [Tree], a binary
// spatial partition that splits a free region into the allocated rectangle
// plus up to two residual free rectangles (one to the right, one below).
//
// Released regions are not coalesced with neighbouring free space. A split
// is only undone once its whole subtree is free again, so heavy churn of
// random sized requests fragments the surface. Callers are expected to run
// their own eviction policy when [Atlas.Find] reports [ErrAllocationFailed];
// see the evict sub-package for FIFO and LRU policies.
//
// # Quick Start
//
//	atlas, err := rectpack.New(rectpack.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h, err := atlas.Find(128, 64)
//	switch {
//	case errors.Is(err, rectpack.ErrAllocationFailed):
//	    // evict something and retry
//	case err != nil:
//	    log.Fatal(err)
//	}
//
//	// upload pixels to face h.Face at h.Rect ...
//
//	_ = atlas.Clear(h)
//
// # Placement
//
// Within a face the first free leaf that fits, in pre-order traversal with
// children visited right, bottom, inner, is chosen. Faces are tried in
// ascending index order by default; [OrderRoundRobin] starts at the face
// after the last successful allocation instead. Both orders are
// deterministic: the same call sequence always yields the same handles.
//
// # Concurrency
//
// [Tree] and [Atlas] are not safe for concurrent use. Wrap an Atlas in
// [Locked] when several goroutines allocate and release.
package rectpack
