package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tiedan-noodle/shop-svc/internal/cart"
	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/format"
	"tiedan-noodle/shop-svc/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	PickupMinutes   = 20
	DeliveryMinutes = 45
)

type OrderService struct {
	submitter
}

func NewOrderService(repo SubmissionRepository, publisher SubmissionPublisher, guard InFlightGuard, opts ...Option) *OrderService {
	return &OrderService{submitter: newSubmitter(repo, publisher, guard, opts)}
}

// OrderFromCart turns the cart's lines into an order request priced from the
// menu items the cart holds.
func OrderFromCart(state cart.State, customer domain.Contact, method domain.DeliveryMethod, notes string, now time.Time) domain.OrderRequest {
	lines := state.Lines()
	items := make([]domain.OrderLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, domain.OrderLine{
			MenuItemID: l.Item.ID,
			Name:       l.Item.Name,
			Price:      l.Item.Price,
			Quantity:   l.Quantity,
			Notes:      l.Notes,
		})
	}
	return domain.OrderRequest{
		Items:          items,
		Customer:       &customer,
		DeliveryMethod: method,
		Notes:          strings.TrimSpace(notes),
		TotalPrice:     state.TotalPrice(),
		Timestamp:      now,
	}
}

func LinesTotal(lines []domain.OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

func EstimatedMinutes(method domain.DeliveryMethod) int {
	if method == domain.DeliveryDelivery {
		return DeliveryMinutes
	}
	return PickupMinutes
}

func (s *OrderService) Validate(req domain.OrderRequest) domain.ValidationResult {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	if len(req.Items) == 0 {
		add("items", "your cart is empty")
	} else {
		for _, l := range req.Items {
			if l.Quantity < validation.MinQuantity {
				add("items", "every item needs a quantity of at least 1")
				break
			}
		}
	}

	if req.Customer == nil {
		add("customerInfo", "please fill in customer details")
	} else {
		switch {
		case !validation.Required(req.Customer.Name):
			add("name", validation.RequiredMessage("your name"))
		case s.strict && !validation.Name(req.Customer.Name):
			add("name", validation.MsgName)
		}
		if !validation.Phone(req.Customer.Phone) {
			add("phone", validation.MsgPhone)
		}
		if req.DeliveryMethod == domain.DeliveryDelivery {
			switch {
			case !validation.Required(req.Customer.Address):
				add("address", validation.RequiredMessage("the delivery address"))
			case s.strict && !validation.Address(req.Customer.Address):
				add("address", validation.MsgAddress)
			}
		}
	}

	switch req.DeliveryMethod {
	case domain.DeliveryPickup, domain.DeliveryDelivery:
	case "":
		add("deliveryMethod", "please choose pickup or delivery")
	default:
		add("deliveryMethod", "unknown delivery method")
	}

	return domain.NewValidationResult(errs)
}

// Submit validates first and settles immediately on failure. A valid order
// completes after the fixed delay. key identifies the caller's session for the
// in-flight guard; an empty key disables it.
func (s *OrderService) Submit(ctx context.Context, key string, req domain.OrderRequest) (*Pending, error) {
	if res := s.Validate(req); !res.IsValid {
		return rejected(res.Errors), nil
	}

	release, err := s.begin(ctx, "order", key)
	if err != nil {
		return nil, err
	}
	return s.run(release, func(now time.Time) domain.SubmitResult {
		return s.place(req, now)
	}), nil
}

func (s *OrderService) place(req domain.OrderRequest, now time.Time) domain.SubmitResult {
	details := domain.OrderDetails{
		OrderID:        newID("ORD", now),
		Items:          append([]domain.OrderLine(nil), req.Items...),
		TotalPrice:     LinesTotal(req.Items),
		DeliveryMethod: req.DeliveryMethod,
		Customer: domain.Contact{
			Name:    strings.TrimSpace(req.Customer.Name),
			Phone:   validation.NormalizePhone(req.Customer.Phone),
			Address: strings.TrimSpace(req.Customer.Address),
		},
		Notes:         strings.TrimSpace(req.Notes),
		EstimatedTime: EstimatedMinutes(req.DeliveryMethod),
		Timestamp:     now,
	}
	if details.DeliveryMethod == domain.DeliveryPickup {
		details.Customer.Address = ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if s.repo != nil {
		if err := s.repo.RecordOrder(ctx, details); err != nil {
			log.Printf("failed to record order %s: %v", details.OrderID, err)
			return failed()
		}
	}

	events := make([]domain.EventItem, 0, len(details.Items))
	for _, l := range details.Items {
		events = append(events, domain.EventItem{MenuItemID: l.MenuItemID, Name: l.Name, Quantity: l.Quantity})
	}
	s.publish(ctx, domain.KafkaMessage{
		Type:           domain.EventOrderSubmitted,
		ID:             details.OrderID,
		Items:          events,
		TotalPrice:     details.TotalPrice,
		DeliveryMethod: details.DeliveryMethod,
		Timestamp:      now,
	})

	return domain.SubmitResult{
		Success: true,
		ID:      details.OrderID,
		Message: orderMessage(details),
		Details: &details,
	}
}

func orderMessage(d domain.OrderDetails) string {
	eta := format.EstimatedTime(d.EstimatedTime)
	total := format.Price(d.TotalPrice)
	if d.DeliveryMethod == domain.DeliveryDelivery {
		return fmt.Sprintf("Order placed! Total %s. Expect delivery in about %s", total, eta)
	}
	return fmt.Sprintf("Order placed! Total %s. Your food will be ready for pickup in about %s", total, eta)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.OrderDetails, error) {
	if s.repo == nil {
		return nil, ErrNotFound
	}
	return s.repo.GetOrder(ctx, id)
}

// QRCode renders the pickup code for a recorded order.
func (s *OrderService) QRCode(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.qr.Generate(PickupURL(s.baseURL, id))
}
