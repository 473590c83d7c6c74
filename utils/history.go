package utils

// History keeps recent grid hashes to detect still lifes and short cycles
type History struct {
	hashes []string
	size   int
}

// NewHistory keeps the last size hashes. size < 3 is raised to 3.
func NewHistory(size int) *History {
	return &History{size: max(size, 3)}
}

// Observe reports whether hash repeats one of the last three states
// (period 1, 2 or 3), then records it.
func (h *History) Observe(hash string) bool {
	stagnant := false
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns how many states are recorded
func (h *History) Len() int {
	return len(h.hashes)
}
