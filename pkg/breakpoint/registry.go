package breakpoint

// Registry 记录每个buffer对应的Manager，按登记顺序遍历
//
// Entries are never removed: a manager for a closed buffer stays until the
// process exits.
type Registry struct {
	marker   Marker
	managers map[string]*Manager
	order    []string
}

// NewRegistry creates an empty registry whose managers draw markers with marker.
func NewRegistry(marker Marker) *Registry {
	return &Registry{
		marker:   marker,
		managers: map[string]*Manager{},
	}
}

// Manager 返回view对应的Manager，不存在时创建并登记
func (r *Registry) Manager(view View) *Manager {
	id := view.ID()
	if m, ok := r.managers[id]; ok {
		return m
	}
	m := NewManager(view, r.marker)
	r.managers[id] = m
	r.order = append(r.order, id)
	return m
}

// Lookup returns the manager registered for the buffer id, if any.
func (r *Registry) Lookup(id string) (*Manager, bool) {
	m, ok := r.managers[id]
	return m, ok
}

// Managers returns all managers in registration order.
func (r *Registry) Managers() []*Manager {
	ms := make([]*Manager, 0, len(r.order))
	for _, id := range r.order {
		ms = append(ms, r.managers[id])
	}
	return ms
}

// Len returns the number of registered managers.
func (r *Registry) Len() int {
	return len(r.order)
}

// Breakpoints 返回所有buffer中的断点，先按Manager登记顺序，再按断点添加顺序
func (r *Registry) Breakpoints() Breakpoints {
	var all Breakpoints
	for _, m := range r.Managers() {
		all = append(all, m.breakpoints...)
	}
	return all
}
