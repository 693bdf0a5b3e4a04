package repo

import "estoque-api/internal/models"

// ProductRepository is the store client contract for product records.
// Every operation is scoped to an owner; authorization lives in the store
// query itself, never re-checked by callers.
type ProductRepository interface {
	// ListByOwner returns all products of the given owner ordered by
	// created_at descending, newest first. Ties are broken by id so
	// repeated calls over unchanged data yield the same order.
	ListByOwner(ownerID int) ([]models.Product, error)

	// Create inserts a new record. ID and CreatedAt are assigned by the
	// store; OwnerID must already be stamped from the active session.
	Create(product models.Product) (models.Product, error)

	// Update replaces all editable fields of the record wholesale.
	// Returns ErrProductNotFound when the id does not exist or belongs
	// to another owner.
	Update(product models.Product) (models.Product, error)

	// Delete removes the record by id, scoped to owner. Irreversible.
	Delete(id string, ownerID int) error
}
