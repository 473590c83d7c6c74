package model

import "sync"

// Snapshot is a read-only copy of one generation handed to renderers.
type Snapshot struct {
	Width      int
	Height     int
	Generation int
	Population int
	Cells      []Cell
}

// Alive reports whether (x, y) is alive; off-grid coordinates are dead.
func (s *Snapshot) Alive(x, y int) bool {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return false
	}
	return s.Cells[y*s.Width+x] == Alive
}

// SnapshotToPool returns a snapshot to the pool for reuse
func SnapshotToPool(s *Snapshot, pool *SnapshotPool) {
	if pool == nil || s == nil {
		return
	}

	pool.Put(s)
}

// SnapshotPool recycles snapshot buffers between frames
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Get retrieves a snapshot from the pool and fills it from the grid's current generation
func (p *SnapshotPool) Get(g *Grid) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	s.Width = g.width
	s.Height = g.height
	s.Generation = g.generation
	s.Population = g.population
	s.Cells = append(s.Cells[:0], g.cur...)
	return s
}

// Put returns a snapshot to the pool, keeping its buffer
func (p *SnapshotPool) Put(s *Snapshot) {
	s.Width, s.Height = 0, 0
	s.Generation, s.Population = 0, 0
	s.Cells = s.Cells[:0]
	p.pool.Put(s)
}
