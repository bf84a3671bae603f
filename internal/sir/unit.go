package sir

// Unit is the set of modules loaded together for one compilation or
// workspace session: the preamble module plus every user and stdlib module
// reachable from the entry point's use graph.
type Unit struct {
	Preamble *Module
	modules  map[string]*Module // keyed by ModulePath.Key()
	order    []string           // insertion order, for deterministic iteration
}

// NewUnit creates a Unit with an empty preamble module scope.
func NewUnit() *Unit {
	u := &Unit{modules: make(map[string]*Module)}
	u.Preamble = NewModule(ModulePath{}, "", nil)
	return u
}

// Get returns the module at path, if loaded.
func (u *Unit) Get(path ModulePath) (*Module, bool) {
	m, ok := u.modules[path.Key()]
	return m, ok
}

// Put inserts or replaces the module at its own Path, preserving insertion
// order for modules seen for the first time.
func (u *Unit) Put(m *Module) {
	key := m.Path.Key()
	if _, exists := u.modules[key]; !exists {
		u.order = append(u.order, key)
	}
	u.modules[key] = m
}

// Remove drops the module at path, e.g. when a source file is deleted from
// the workspace.
func (u *Unit) Remove(path ModulePath) {
	key := path.Key()
	delete(u.modules, key)
	for i, k := range u.order {
		if k == key {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
}

// Modules returns the loaded modules in insertion order.
func (u *Unit) Modules() []*Module {
	out := make([]*Module, 0, len(u.order))
	for _, key := range u.order {
		out = append(out, u.modules[key])
	}
	return out
}

// Len reports the number of loaded modules (excluding the preamble).
func (u *Unit) Len() int { return len(u.modules) }
