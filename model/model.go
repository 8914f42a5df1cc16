// Package model loads voxel scenes described in TOML and paints them into an
// isovox volume.
//
// A scene file declares the volume size and a list of boxes:
//
//	[volume]
//	size = [64, 64, 16]
//	rotation = 0
//	batch = true
//
//	[[box]]
//	min = [0, 0, 0]
//	max = [63, 63, 0]
//	material = 1
//
// Boxes are painted in file order, so later boxes overwrite earlier ones and
// material 0 carves holes.
package model

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/isovox"
)

// ErrInvalidModel is returned when a scene file is malformed.
var ErrInvalidModel = errors.New("model: invalid model")

// Model is a decoded scene file.
type Model struct {
	Volume VolumeConfig `toml:"volume"`
	Boxes  []Box        `toml:"box"`
}

// VolumeConfig is the [volume] table.
type VolumeConfig struct {
	// Size is the requested volume size {x, y, z}. Each component is
	// rounded up to a multiple of 8 by isovox.New.
	Size []int `toml:"size"`

	// Rotation is the initial view rotation, taken modulo 4.
	Rotation int `toml:"rotation"`

	// Batch wraps the load in a full update instead of incremental flushes.
	Batch bool `toml:"batch"`
}

// Box is one [[box]] entry: an inclusive range of voxels set to Material.
type Box struct {
	Min      []int `toml:"min"`
	Max      []int `toml:"max"`
	Material int   `toml:"material"`
}

// Voxels returns the number of voxels the box covers before clipping.
func (b Box) Voxels() int {
	n := 1
	for i := 0; i < 3; i++ {
		n *= b.Max[i] - b.Min[i] + 1
	}
	return n
}

// Decode reads and validates a scene from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Model, error) {
	var m Model
	md, err := toml.NewDecoder(r).Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("model: decode: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and validates the scene file at path.
func Load(path string) (*Model, error) {
	var m Model
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("model: could not decode %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &m, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalidModel, strings.Join(names, ", "))
}

// Validate checks vector lengths, box ordering, materials and size.
func (m *Model) Validate() error {
	if len(m.Volume.Size) != 3 {
		return fmt.Errorf("%w: volume.size has %d components, want 3", ErrInvalidModel, len(m.Volume.Size))
	}
	for i, n := range m.Volume.Size {
		if n <= 0 {
			return fmt.Errorf("%w: volume.size[%d] = %d, want > 0", ErrInvalidModel, i, n)
		}
	}

	for i, b := range m.Boxes {
		if len(b.Min) != 3 || len(b.Max) != 3 {
			return fmt.Errorf("%w: box %d: min and max need 3 components", ErrInvalidModel, i)
		}
		for a := 0; a < 3; a++ {
			if b.Min[a] > b.Max[a] {
				return fmt.Errorf("%w: box %d: min %v exceeds max %v", ErrInvalidModel, i, b.Min, b.Max)
			}
		}
		if b.Material < 0 || b.Material > 255 {
			return fmt.Errorf("%w: box %d: material %d out of range [0, 255]", ErrInvalidModel, i, b.Material)
		}
	}
	return nil
}

// New creates an empty volume sized and rotated as the scene declares.
// opts are applied after the scene's rotation.
func (m *Model) New(opts ...isovox.Option) (*isovox.Volume, error) {
	s := m.Volume.Size
	opts = append([]isovox.Option{isovox.WithRotation(m.Volume.Rotation)}, opts...)
	v, err := isovox.New(s[0], s[1], s[2], opts...)
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	return v, nil
}

// Apply paints the boxes into v and flushes. Voxels outside v are skipped.
// It returns the number of flushes Put triggered because a queue filled up;
// a batched load always returns 0.
func (m *Model) Apply(v *isovox.Volume) int {
	if m.Volume.Batch {
		v.SetFullUpdate()
	}

	dx, dy, dz := v.Dims()
	flushes, voxels := 0, 0
	for _, b := range m.Boxes {
		voxels += b.Voxels()
		x0, x1 := max(b.Min[0], 0), min(b.Max[0], dx-1)
		y0, y1 := max(b.Min[1], 0), min(b.Max[1], dy-1)
		z0, z1 := max(b.Min[2], 0), min(b.Max[2], dz-1)
		value := byte(b.Material)

		for z := z0; z <= z1; z++ {
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					if v.Put(x, y, z, value) {
						flushes++
					}
				}
			}
		}
	}

	v.Flush()

	isovox.Logger().Debug("model: applied",
		"boxes", len(m.Boxes), "voxels", voxels, "batch", m.Volume.Batch, "implicitFlushes", flushes)
	return flushes
}
