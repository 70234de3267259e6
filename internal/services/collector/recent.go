package collector

// recentSet remembers the last size keys in insertion order. Adding beyond
// size evicts the oldest key.
type recentSet struct {
	size  int
	queue []string
	keys  map[string]struct{}
}

func newRecentSet(size int) *recentSet {
	return &recentSet{
		size:  size,
		queue: make([]string, 0, size+1),
		keys:  make(map[string]struct{}, size+1),
	}
}

func (r *recentSet) Contains(key string) bool {
	_, ok := r.keys[key]
	return ok
}

func (r *recentSet) Add(key string) {
	if r.Contains(key) {
		return
	}

	r.queue = append(r.queue, key)
	r.keys[key] = struct{}{}

	for len(r.queue) > r.size {
		oldest := r.queue[0]
		r.queue = r.queue[1:]
		delete(r.keys, oldest)
	}
}

func (r *recentSet) Len() int {
	return len(r.queue)
}
