package fixture

import (
	"fmt"

	"streamquery/internal/model"
)

// Dataset is a complete, linked set of customers, products and orders.
type Dataset struct {
	Customers []*model.Customer
	Products  []*model.Product
	Orders    []*model.Order
}

// Link resolves every order's customer and product references by ID so that
// orders share the dataset's customer and product values. It fails with
// model.ErrInvalidFixture on duplicate IDs or dangling references.
func (d *Dataset) Link() error {
	customers := make(map[int64]*model.Customer, len(d.Customers))
	for _, c := range d.Customers {
		if _, ok := customers[c.ID]; ok {
			return fmt.Errorf("%w: duplicate customer id %d", model.ErrInvalidFixture, c.ID)
		}
		customers[c.ID] = c
	}

	products := make(map[int64]*model.Product, len(d.Products))
	for _, p := range d.Products {
		if _, ok := products[p.ID]; ok {
			return fmt.Errorf("%w: duplicate product id %d", model.ErrInvalidFixture, p.ID)
		}
		products[p.ID] = p
	}

	seen := make(map[int64]struct{}, len(d.Orders))
	for _, o := range d.Orders {
		if _, ok := seen[o.ID]; ok {
			return fmt.Errorf("%w: duplicate order id %d", model.ErrInvalidFixture, o.ID)
		}
		seen[o.ID] = struct{}{}

		customerID := o.CustomerID
		if customerID == 0 && o.Customer != nil {
			customerID = o.Customer.ID
		}
		customer, ok := customers[customerID]
		if !ok {
			return fmt.Errorf("%w: order %d references unknown customer %d", model.ErrInvalidFixture, o.ID, customerID)
		}
		o.CustomerID = customer.ID
		o.Customer = customer

		for i, ref := range o.Products {
			if ref == nil {
				return fmt.Errorf("%w: order %d has an empty product reference", model.ErrInvalidFixture, o.ID)
			}
			product, ok := products[ref.ID]
			if !ok {
				return fmt.Errorf("%w: order %d references unknown product %d", model.ErrInvalidFixture, o.ID, ref.ID)
			}
			o.Products[i] = product
		}
	}

	return nil
}

// productRefs builds unresolved product references for Link to replace.
func productRefs(ids ...int64) []*model.Product {
	refs := make([]*model.Product, len(ids))
	for i, id := range ids {
		refs[i] = &model.Product{ID: id}
	}
	return refs
}
