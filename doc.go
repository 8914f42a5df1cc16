// Package isovox renders a dense voxel volume into an isometric bitmap and
// keeps that bitmap current as voxels change.
//
// # Overview
//
// A Volume stores one byte per voxel; zero is empty. Every write records the
// shading and rendering work it causes in two bounded queues, and Flush
// commits that work. Only the diagonals touched since the previous flush are
// repainted, so the cost of a flush follows the size of the change rather
// than the size of the volume.
//
// # Quick Start
//
//	import "github.com/gogpu/isovox"
//
//	v, err := isovox.New(128, 128, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v.Put(10, 10, 0, 1)
//	v.Flush()
//
//	// Upload only what changed.
//	for _, r := range v.TakeDamage() {
//	    upload(v.Bitmap(), r)
//	}
//
// # Shading
//
// Each occupied voxel carries one of four shade classes derived from the
// emptiness of its neighbors toward the camera: top (Z), one side (X or Y),
// or both sides (XY, painted two-tone). Voxels on the camera-facing boundary
// layer of the volume are never classified and render in the zero color.
//
// # Full updates
//
// SetFullUpdate switches the volume into a mode where Put only stores
// values; the next Flush reshades and repaints everything. This is faster
// than incremental flushing for bulk loads. Changing the rotation schedules a
// full update automatically.
//
// # Coordinate System
//
// X and Y span the ground plane and Z is height. The bitmap origin is at the
// top-left; each visible diagonal owns one 2x2 fat pixel.
//
// # Debugging
//
// Building with the isovoxdebug tag, or passing WithInvariantChecks(true),
// enables internal consistency checks that panic with a descriptive error.
package isovox

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
