package order

import (
	"errors"
	"time"

	"tableorder/internal/core/domain/model/actor"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a dine-in order placed at a restaurant table. It is the
// aggregate root that manages the order lifecycle from placement through
// confirmation and serving to settlement.
//
// Order follows these invariants:
//   - totalAmount always equals the sum of price times quantity over items;
//     it is recomputed on every item edit and never independently settable
//   - status transitions follow the state machine defined on Status
//   - once the status is terminal, items, note, and totalAmount are immutable
//   - paymentMethod is set only on the transition into Completed
//   - every mutation stamps updatedBy/updatedByName; the Pending to Confirmed
//     transition additionally stamps confirmedBy/confirmedByName, which later
//     mutations never overwrite
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID

	// tableCode names the physical table, e.g. "5" or "VIP1". Opaque.
	tableCode string

	items       []Item
	totalAmount int64

	status        Status
	paymentMethod PaymentMethod

	note         string
	customerName string

	updatedBy       *kernel.UUID
	updatedByName   string
	confirmedBy     *kernel.UUID
	confirmedByName string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is the
// only way to create a fresh order, ensuring all business invariants hold from
// the start.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - restaurantID: The restaurant the order belongs to (must be a valid UUID)
//   - tableCode: Non-empty code of the table the customer sits at
//   - items: At least one validated line item snapshot
//   - note, customerName: Optional free text
//
// The total amount is computed from the items; callers never supply it.
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	tableCode string,
	items []Item,
	note string,
	customerName string,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		note:          note,
		customerName:  customerName,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setTableCode(tableCode),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrderParams carries the persisted state of an order for
// reconstruction. All invariant checks of NewOrder apply during restore.
type RestoreOrderParams struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	TableCode       string
	Items           []Item
	Status          Status
	PaymentMethod   PaymentMethod
	Note            string
	CustomerName    string
	UpdatedBy       *kernel.UUID
	UpdatedByName   string
	ConfirmedBy     *kernel.UUID
	ConfirmedByName string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts any valid status, but it still validates every
// field so corrupted rows cannot materialize as invalid aggregates.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	order := &Order{
		note:            params.Note,
		customerName:    params.CustomerName,
		updatedBy:       params.UpdatedBy,
		updatedByName:   params.UpdatedByName,
		confirmedBy:     params.ConfirmedBy,
		confirmedByName: params.ConfirmedByName,
		createdAt:       params.CreatedAt,
		updatedAt:       params.UpdatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(params.ID),
		order.setRestaurantID(params.RestaurantID),
		order.setTableCode(params.TableCode),
		order.setItems(params.Items),
		order.setStatus(params.Status),
	); err != nil {
		return nil, err
	}

	if params.Status == Completed {
		if err := order.setPaymentMethod(params.PaymentMethod); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the restaurant the order belongs to.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// TableCode returns the code of the table the order was placed at.
func (o *Order) TableCode() string {
	return o.tableCode
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total in minor currency units.
// It always equals the sum of price times quantity over the items.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the order was settled.
// Returns PaymentMethodUnknown unless the order is Completed.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Note returns the customer's free-text note.
func (o *Order) Note() string {
	return o.note
}

// CustomerName returns the optional customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// UpdatedBy returns the identity of the actor of the latest mutation.
// Returns nil for a freshly placed order that has not been touched by staff.
func (o *Order) UpdatedBy() *kernel.UUID {
	return o.updatedBy
}

// UpdatedByName returns the display name of the actor of the latest mutation.
func (o *Order) UpdatedByName() string {
	return o.updatedByName
}

// ConfirmedBy returns the identity of the actor who confirmed the order.
// Returns nil while the order has never been confirmed. The stamp survives
// later transitions that overwrite UpdatedBy.
func (o *Order) ConfirmedBy() *kernel.UUID {
	return o.confirmedBy
}

// ConfirmedByName returns the display name of the confirming actor.
func (o *Order) ConfirmedByName() string {
	return o.confirmedByName
}

// CreatedAt returns the creation time. Immutable.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the latest mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Confirm transitions the order from Pending to Confirmed.
//
// Besides the regular audit stamp it records the confirming actor in the
// dedicated confirmedBy/confirmedByName fields, which are preserved even
// after later transitions overwrite updatedBy.
//
// Returns a ConflictError if the order is not Pending.
func (o *Order) Confirm(by actor.Actor) error {
	if err := o.transitionTo(Confirmed, by); err != nil {
		return err
	}

	id := by.ID()
	o.confirmedBy = &id
	o.confirmedByName = by.Name()
	return nil
}

// Serve transitions the order from Confirmed to Served.
// Returns a ConflictError on any other source status.
func (o *Order) Serve(by actor.Actor) error {
	return o.transitionTo(Served, by)
}

// Complete transitions the order from Served to Completed and labels how it
// was settled. The payment method is required here and can be set at no other
// point in the lifecycle.
//
// Returns a validation error for a missing or invalid method and a
// ConflictError if the order is not Served.
func (o *Order) Complete(by actor.Actor, method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	if err := o.transitionTo(Completed, by); err != nil {
		return err
	}

	o.paymentMethod = method
	return nil
}

// Cancel transitions the order to Cancelled. Legal from Pending and
// Confirmed; a Served order can no longer be cancelled.
// Cancelling releases the order's table slot immediately.
func (o *Order) Cancel(by actor.Actor) error {
	return o.transitionTo(Cancelled, by)
}

// EditItems replaces the order's line items and optionally its note, then
// recomputes the total amount. The status is never touched by an item edit.
//
// Rules:
//   - the order must not be in a terminal status (ConflictError otherwise)
//   - items must contain at least one validated line item
//
// Either the edit fully applies or the order is left untouched.
func (o *Order) EditItems(items []Item, note *string, by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError("cannot edit terminal order")
	}

	// setItems validates before mutating, so a bad item list leaves the
	// aggregate unchanged.
	if err := o.setItems(items); err != nil {
		return err
	}

	if note != nil {
		o.note = *note
	}

	o.stamp(by)
	return nil
}

// transitionTo follows the state machine edge to target and stamps the audit
// fields. The edge legality check owns all transition rules; this method adds
// none of its own.
func (o *Order) transitionTo(target Status, by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stamp(by)
	return nil
}

// stamp records the acting identity on the order. Descriptive audit trail
// only: these fields carry no authorization weight.
func (o *Order) stamp(by actor.Actor) {
	id := by.ID()
	o.updatedBy = &id
	o.updatedByName = by.Name()
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setTableCode(tableCode string) error {
	if tableCode == "" {
		return errs.NewValueIsRequiredError("tableCode")
	}
	o.tableCode = tableCode
	return nil
}

// setItems validates and replaces the item list and keeps totalAmount in sync.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order must have at least 1 item")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	copied := make([]Item, len(items))
	copy(copied, items)

	o.items = copied
	o.totalAmount = 0
	for _, item := range copied {
		o.totalAmount += item.Subtotal()
	}
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
