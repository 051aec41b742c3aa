// Package view holds the presentation state of the storefront screens.
//
// Each view owns a Holder with exactly one active state out of Idle,
// Loading, Success and Failure. Views are safe to drive from a UI loop
// while their network calls run on other goroutines:
//
//	form := view.NewOrderFormView(loadCatalog, submitOrder)
//	_ = form.LoadCatalog(ctx)
//	form.SetCustomer("Ann", "ann@example.com")
//	_ = form.UpdateItem(0, draft.FieldProduct, productID)
//	orderID, err := form.Submit(ctx)
//
// A second Submit or Lookup while one is in flight returns ErrBusy. After
// Close, late responses are discarded.
package view
