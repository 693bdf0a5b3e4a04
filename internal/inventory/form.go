package inventory

import (
	"fmt"

	"estoque-api/internal/auth"
	"estoque-api/internal/models"
	"estoque-api/internal/repo"
)

// FormController owns the single draft of a product being created or edited.
// A target id distinguishes the edit path from the create path; the draft
// survives a failed submit intact so nothing the user typed is lost.
type FormController struct {
	store   repo.ProductRepository
	session auth.Session
	draft   ProductDraft
	target  string
}

func NewFormController(store repo.ProductRepository, session auth.Session) *FormController {
	f := &FormController{store: store, session: session}
	f.Initialize(nil)
	return f
}

// Initialize seeds the draft. With an existing product it becomes an edit
// targeting that product's id; with nil it becomes a create with an empty
// draft (name "", description "", all numerics 0).
func (f *FormController) Initialize(product *models.Product) {
	if product == nil {
		f.target = ""
		f.draft = ProductDraft{}
		return
	}
	f.target = product.ID
	f.draft = ProductDraft{
		Name:        product.Name,
		Description: product.Description,
		Quantity:    product.Quantity,
		CostValue:   product.CostValue,
		SaleValue:   product.SaleValue,
	}
}

// Draft returns a copy of the current draft.
func (f *FormController) Draft() ProductDraft {
	return f.draft
}

// Editing reports whether the form targets an existing product.
func (f *FormController) Editing() bool {
	return f.target != ""
}

// SetField mutates one draft field. Numeric fields coerce string input
// defensively, so a value stored as text still lands as a number; a value
// that cannot be coerced is rejected and the draft is left untouched.
func (f *FormController) SetField(name string, value any) error {
	switch name {
	case "name":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q: not a string: %v", name, value)
		}
		f.draft.Name = s
	case "description":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q: not a string: %v", name, value)
		}
		f.draft.Description = s
	case "quantity":
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		f.draft.Quantity = n
	case "cost_value":
		v, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		f.draft.CostValue = v
	case "sale_value":
		v, err := toFloat(value)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		f.draft.SaleValue = v
	default:
		return fmt.Errorf("unknown draft field %q", name)
	}
	return nil
}

// Submit validates the draft and sends it to the store: update when a target
// id is set, create stamped with the session owner otherwise. On any failure
// the draft and target are kept so the form can be corrected and resubmitted.
func (f *FormController) Submit() (models.Product, error) {
	if !f.session.Valid() {
		return models.Product{}, auth.ErrUnauthenticated
	}
	if err := f.draft.Validate(); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:          f.target,
		OwnerID:     f.session.UserID,
		Name:        f.draft.Name,
		Description: f.draft.Description,
		Quantity:    f.draft.Quantity,
		CostValue:   f.draft.CostValue,
		SaleValue:   f.draft.SaleValue,
	}

	var (
		saved models.Product
		err   error
	)
	if f.target != "" {
		saved, err = f.store.Update(product)
	} else {
		saved, err = f.store.Create(product)
	}
	if err != nil {
		return models.Product{}, err
	}

	f.Initialize(nil)
	return saved, nil
}
