package dto

import (
	"fmt"

	apierrors "github.com/Sohype-Khaled/PluseOneBlogTask/internal/errors"
)

// RelationField maps a many-to-many relation between its two wire encodings:
// nested objects on output, bare ids on input. Render and Resolve are kept as
// two explicit functions rather than one bidirectional field.
type RelationField[E any, D any] struct {
	// Name is the request field the relation is keyed under in error bodies.
	Name string
	// Render converts one related entity to its response representation.
	Render func(E) D
	// Lookup fetches the entities for the given ids. Missing ids are simply
	// absent from the result.
	Lookup func(ids []uint64) ([]E, error)
	// ID extracts an entity's identifier, used to report which ids failed to
	// resolve.
	ID func(E) uint64
}

// RenderAll converts related entities to their response representations.
func (f RelationField[E, D]) RenderAll(entities []E) []D {
	rendered := make([]D, len(entities))
	for i, entity := range entities {
		rendered[i] = f.Render(entity)
	}
	return rendered
}

// Resolve fetches the entities behind the submitted ids. Any id without a
// matching row produces a validation failure keyed under the field name.
func (f RelationField[E, D]) Resolve(ids []uint64) ([]E, error) {
	if len(ids) == 0 {
		return []E{}, nil
	}

	entities, err := f.Lookup(ids)
	if err != nil {
		return nil, err
	}

	found := make(map[uint64]bool, len(entities))
	for _, entity := range entities {
		found[f.ID(entity)] = true
	}

	errs := apierrors.ValidationErrors{}
	for _, id := range ids {
		if !found[id] {
			errs.Add(f.Name, fmt.Sprintf("Invalid id %d - object does not exist.", id))
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return entities, nil
}
