// Package grid builds the square lattice of typed cells the scene is laid out on.
package grid

import "fmt"

// Category is the type assigned to a cell.
type Category uint8

const (
	Empty Category = iota
	Building
	Flower
)

// Categories lists every category in weight-table order.
var Categories = []Category{Building, Flower, Empty}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Building:
		return "building"
	case Flower:
		return "flower"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Cell is a single lattice position and its category.
type Cell struct {
	X, Z  int
	State Category
}

// Sampler draws one category per call.
type Sampler interface {
	Sample() Category
}

// Grid is a mapSize x mapSize lattice stored x-major: all z for x=0, then x=1...
type Grid struct {
	Size  int
	cells []Cell
}

// Build draws one category per cell, iterating x in the outer loop and z in the
// inner loop. The draw order is fixed so a given random stream always yields the
// same grid.
func Build(mapSize int, s Sampler) (*Grid, error) {
	if mapSize <= 0 {
		return nil, fmt.Errorf("map size must be positive, got %d", mapSize)
	}
	cells := make([]Cell, 0, mapSize*mapSize)
	for x := 0; x < mapSize; x++ {
		for z := 0; z < mapSize; z++ {
			cells = append(cells, Cell{X: x, Z: z, State: s.Sample()})
		}
	}
	return &Grid{Size: mapSize, cells: cells}, nil
}

// Cells exposes the backing slice in build order. Callers must not modify it.
func (g *Grid) Cells() []Cell { return g.cells }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the slice index for (x, z).
func (g *Grid) Index(x, z int) int { return x*g.Size + z }

// At returns the cell at (x, z).
func (g *Grid) At(x, z int) (Cell, bool) {
	if x < 0 || z < 0 || x >= g.Size || z >= g.Size {
		return Cell{}, false
	}
	return g.cells[g.Index(x, z)], true
}

// Count returns how many cells have category c.
func (g *Grid) Count(c Category) int {
	n := 0
	for _, cell := range g.cells {
		if cell.State == c {
			n++
		}
	}
	return n
}
