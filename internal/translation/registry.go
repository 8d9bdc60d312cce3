package translation

import "marketgogo/backend/internal/models"

// Record is implemented by persisted entities whose fields can be
// translated. RecordKey is empty until the entity has been saved.
type Record interface {
	ObjectClass() string
	RecordKey() string
}

// FieldAccess reads and writes one translatable field of a record. Accessors
// are registered per (object class, field) at startup, so field resolution
// is an explicit table lookup rather than reflection.
type FieldAccess struct {
	Get func(rec Record) string
	Set func(rec Record, value string)
}

// Registry maps (object class, field name) to typed accessors. It is built
// once during wiring and read-only afterwards.
type Registry struct {
	fields map[string]map[string]FieldAccess
}

// NewRegistry creates an empty accessor registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[string]map[string]FieldAccess)}
}

// Register adds an accessor for one field of one object class, replacing any
// previous registration.
func (r *Registry) Register(objectClass, field string, access FieldAccess) {
	if r.fields[objectClass] == nil {
		r.fields[objectClass] = make(map[string]FieldAccess)
	}
	r.fields[objectClass][field] = access
}

// Lookup returns the accessor for (objectClass, field).
func (r *Registry) Lookup(objectClass, field string) (FieldAccess, bool) {
	access, ok := r.fields[objectClass][field]
	return access, ok
}

// Fields returns the registered field names for an object class.
func (r *Registry) Fields(objectClass string) []string {
	names := make([]string, 0, len(r.fields[objectClass]))
	for name := range r.fields[objectClass] {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns the registry of the application's translatable
// entities and their whitelisted fields.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("models.Product", "name", FieldAccess{
		Get: func(rec Record) string { return rec.(*models.Product).Name },
		Set: func(rec Record, value string) { rec.(*models.Product).Name = value },
	})
	r.Register("models.Product", "description", FieldAccess{
		Get: func(rec Record) string { return rec.(*models.Product).Description },
		Set: func(rec Record, value string) { rec.(*models.Product).Description = value },
	})
	r.Register("models.Company", "name", FieldAccess{
		Get: func(rec Record) string { return rec.(*models.Company).Name },
		Set: func(rec Record, value string) { rec.(*models.Company).Name = value },
	})
	r.Register("models.Company", "about", FieldAccess{
		Get: func(rec Record) string { return rec.(*models.Company).About },
		Set: func(rec Record, value string) { rec.(*models.Company).About = value },
	})

	return r
}
