package fake

// Store is a fake implementation of a transactional store. The calls are
// recorded and the outcome of Commit and Rollback can be scripted.
//
// - implements store.Transactional
type Store struct {
	Call   *Call
	Values map[string]string
	Accept bool
	depth  int
}

// NewStore creates a new empty fake store that accepts commits and rollbacks.
func NewStore() *Store {
	return &Store{
		Call:   &Call{},
		Values: make(map[string]string),
		Accept: true,
	}
}

// NewBadStore creates a new empty fake store that rejects every commit and
// rollback.
func NewBadStore() *Store {
	store := NewStore()
	store.Accept = false

	return store
}

// Get implements store.Readable.
func (s *Store) Get(key string) (string, bool) {
	s.Call.Add("get", key)

	value, found := s.Values[key]

	return value, found
}

// Set implements store.Writable.
func (s *Store) Set(key string, value string) {
	s.Call.Add("set", key, value)

	s.Values[key] = value
}

// Delete implements store.Writable.
func (s *Store) Delete(key string) {
	s.Call.Add("delete", key)

	delete(s.Values, key)
}

// Begin implements store.Transactional.
func (s *Store) Begin() bool {
	s.Call.Add("begin")

	s.depth++

	return true
}

// Commit implements store.Transactional.
func (s *Store) Commit() bool {
	s.Call.Add("commit")

	if !s.Accept || s.depth == 0 {
		return false
	}

	s.depth--

	return true
}

// Rollback implements store.Transactional.
func (s *Store) Rollback() bool {
	s.Call.Add("rollback")

	if !s.Accept || s.depth == 0 {
		return false
	}

	s.depth--

	return true
}

// Depth implements store.Transactional.
func (s *Store) Depth() int {
	return s.depth
}
