package order

import (
	"context"
	"fmt"

	"github.com/pedidos/backend/internal/domain/catalog"
	"github.com/pedidos/backend/internal/domain/order"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order business operations.
// Lifecycle transitions never touch stock levels; physical stock changes are
// recorded separately through the stock adjustment flow.
type OrderService struct {
	orderRepo order.OrderRepository
	itemRepo  catalog.ItemRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.OrderRepository, itemRepo catalog.ItemRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
	}
}

// Create registers a new order in PENDING status
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if err := s.checkItemsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(req.StudentName, req.StudentClass, req.RequestedBy, req.Notes)
	if err != nil {
		return nil, err
	}
	for _, line := range req.Items {
		if _, err := o.AddLine(line.ItemID, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, o.ID)
}

// GetByID retrieves an order by ID with its lines and items
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(o)
	return &response, nil
}

// List retrieves orders matching the filter, newest first
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, error) {
	f := shared.DefaultFilter()
	f.Search = filter.Search
	if filter.Status != "" {
		status := order.OrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown order status %q", filter.Status))
		}
		f.Filters["status"] = status.String()
	}

	orders, err := s.orderRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return ToOrderResponseList(orders), nil
}

// Update edits a pending order. When the request carries items the full line
// set is replaced; the replacement is all-or-nothing.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	studentName := o.StudentName
	if req.StudentName != nil {
		studentName = *req.StudentName
	}
	studentClass := o.StudentClass
	if req.StudentClass != nil {
		studentClass = *req.StudentClass
	}
	requestedBy := o.RequestedBy
	if req.RequestedBy != nil {
		requestedBy = *req.RequestedBy
	}
	notes := o.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := o.UpdateDetails(studentName, studentClass, requestedBy, notes); err != nil {
		return nil, err
	}

	if req.Items != nil {
		if err := s.checkItemsExist(ctx, *req.Items); err != nil {
			return nil, err
		}

		replacement := make([]order.OrderLine, 0, len(*req.Items))
		for _, line := range *req.Items {
			replacement = append(replacement, order.OrderLine{ItemID: line.ItemID, Quantity: line.Quantity})
		}
		if err := o.ReplaceLines(replacement); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, o.ID)
}

// Transition moves an order to a new lifecycle status
func (s *OrderService) Transition(ctx context.Context, id uuid.UUID, req TransitionOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(order.OrderStatus(req.Status), req.TrackingCode); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, o.ID)
}

// checkItemsExist verifies every referenced catalog item exists
func (s *OrderService) checkItemsExist(ctx context.Context, lines []OrderLineInput) error {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}

	items, err := s.itemRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		found[item.ID] = true
	}
	for _, line := range lines {
		if !found[line.ItemID] {
			return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Item %s does not exist", line.ItemID))
		}
	}
	return nil
}
