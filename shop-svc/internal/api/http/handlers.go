package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"tiedan-noodle/shop-svc/internal/cart"
	"tiedan-noodle/shop-svc/internal/catalog"
	"tiedan-noodle/shop-svc/internal/domain"
	"tiedan-noodle/shop-svc/internal/service"
	"tiedan-noodle/shop-svc/internal/validation"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Menu         *catalog.Menu
	Carts        service.CartServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
	QR           service.QRGenerator
}

func NewHandler(menu *catalog.Menu, carts service.CartServiceInterface, orders service.OrderServiceInterface,
	reservations service.ReservationServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{
		Menu:         menu,
		Carts:        carts,
		Orders:       orders,
		Reservations: reservations,
		QR:           qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/menu/signature", h.getSignature).Methods("GET")
	r.HandleFunc("/api/menu/export.xlsx", h.exportMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/store", h.getStore).Methods("GET")
	r.HandleFunc("/api/store/hours", h.getStoreHours).Methods("GET")
	r.HandleFunc("/api/store/map/qrcode", h.getStoreMapQRCode).Methods("GET")

	r.HandleFunc("/api/cart", h.createCart).Methods("POST")
	r.HandleFunc("/api/cart/{session}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{session}", h.deleteCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{session}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{session}/items", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{session}/items/{itemId}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/{session}/items/{itemId}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/reservations/dates", h.getReservationDates).Methods("GET")
	r.HandleFunc("/api/reservations/times", h.getReservationTimes).Methods("GET")
	r.HandleFunc("/api/reservations/validate", h.validateReservation).Methods("POST")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.getReservation).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "shop-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeJSON(w, http.StatusOK, h.Menu.Available())
		return
	}
	if !domain.Category(category).Valid() {
		http.Error(w, fmt.Sprintf("unknown category %q", category), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Menu.ByCategory(domain.Category(category)))
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menu.Categories())
}

func (h *Handler) getSignature(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Menu.Signature())
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Menu.Get(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "menu item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) exportMenu(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", "attachment; filename=menu.xlsx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := h.Menu.WriteXLSX(w); err != nil {
		log.Printf("failed to export menu: %v", err)
		http.Error(w, "failed to export menu", http.StatusInternalServerError)
	}
}

type storeResponse struct {
	catalog.StoreInfo
	MapURL          string            `json:"map_url"`
	TelLinks        map[string]string `json:"tel_links"`
	FormattedMobile string            `json:"formatted_mobile"`
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	info := catalog.Store()
	writeJSON(w, http.StatusOK, storeResponse{
		StoreInfo: info,
		MapURL:    info.MapURL(),
		TelLinks: map[string]string{
			"phone":  info.TelLink("phone"),
			"mobile": info.TelLink("mobile"),
		},
		FormattedMobile: info.FormattedMobile(),
	})
}

type dayHoursView struct {
	Day string `json:"day"`
	domain.DayHours
}

func (h *Handler) getStoreHours(w http.ResponseWriter, r *http.Request) {
	hours := catalog.Store().WeeklyHours
	out := make([]dayHoursView, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out = append(out, dayHoursView{Day: d.String(), DayHours: hours[d]})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getStoreMapQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.QR.Generate(catalog.Store().MapURL())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writePNG(w, png)
}

type cartView struct {
	SessionID  string          `json:"session_id"`
	Items      []cart.Line     `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ItemCount  int             `json:"item_count"`
}

func newCartView(sessionID string, state cart.State) cartView {
	items := state.Lines()
	if items == nil {
		items = []cart.Line{}
	}
	return cartView{
		SessionID:  sessionID,
		Items:      items,
		TotalPrice: state.TotalPrice(),
		ItemCount:  state.ItemCount(),
	}
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrUnknownItem):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrItemUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	id, err := h.Carts.Create(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, newCartView(id, cart.Empty()))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session := mux.Vars(r)["session"]
	state, err := h.Carts.Get(r.Context(), session)
	if err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(session, state))
}

func (h *Handler) deleteCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Delete(r.Context(), mux.Vars(r)["session"]); err != nil {
		writeCartError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func quantityError(q int) []domain.FieldError {
	if validation.Quantity(q) {
		return nil
	}
	return []domain.FieldError{{Field: "quantity", Message: validation.MsgQuantity}}
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID   string `json:"item_id"`
		Quantity int    `json:"quantity"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	if errs := quantityError(payload.Quantity); errs != nil {
		writeJSON(w, http.StatusUnprocessableEntity, domain.NewValidationResult(errs))
		return
	}

	session := mux.Vars(r)["session"]
	state, err := h.Carts.AddItem(r.Context(), session, payload.ItemID, payload.Quantity, payload.Notes)
	if err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(session, state))
}

// updateCartItem sets the quantity, the notes, or both. A quantity of 0
// removes the line.
func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity *int    `json:"quantity"`
		Notes    *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Quantity == nil && payload.Notes == nil {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}

	itemID := mux.Vars(r)["itemId"]
	var batch cart.Batch
	if payload.Notes != nil {
		batch = append(batch, cart.UpdateNotes{ItemID: itemID, Notes: *payload.Notes})
	}
	if payload.Quantity != nil {
		if *payload.Quantity != 0 {
			if errs := quantityError(*payload.Quantity); errs != nil {
				writeJSON(w, http.StatusUnprocessableEntity, domain.NewValidationResult(errs))
				return
			}
		}
		batch = append(batch, cart.UpdateQuantity{ItemID: itemID, Quantity: *payload.Quantity})
	}

	h.applyToCart(w, r, batch)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.applyToCart(w, r, cart.RemoveItem{ItemID: mux.Vars(r)["itemId"]})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.applyToCart(w, r, cart.Clear{})
}

func (h *Handler) applyToCart(w http.ResponseWriter, r *http.Request, cmd cart.Command) {
	session := mux.Vars(r)["session"]
	state, err := h.Carts.Apply(r.Context(), session, cmd)
	if err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartView(session, state))
}

type orderItemInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

type orderPayload struct {
	SessionID      string                `json:"session_id"`
	Items          []orderItemInput      `json:"items"`
	Customer       *domain.Contact       `json:"customer_info"`
	DeliveryMethod domain.DeliveryMethod `json:"delivery_method"`
	Notes          string                `json:"notes"`
}

// orderCart resolves the lines of an order: explicit items win, otherwise the
// session's cart is used. Items are always priced from the menu.
func (h *Handler) orderCart(r *http.Request, payload orderPayload) (cart.State, []domain.FieldError, error) {
	if len(payload.Items) == 0 {
		if payload.SessionID == "" {
			return cart.Empty(), nil, nil
		}
		state, err := h.Carts.Get(r.Context(), payload.SessionID)
		return state, nil, err
	}

	var (
		errs  []domain.FieldError
		lines []cart.Line
	)
	for _, in := range payload.Items {
		item, ok := h.Menu.Get(in.ID)
		switch {
		case !ok:
			errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("unknown menu item %q", in.ID)})
		case !item.Available:
			errs = append(errs, domain.FieldError{Field: "items", Message: fmt.Sprintf("%s is not available right now", item.Name)})
		case !validation.Quantity(in.Quantity):
			errs = append(errs, domain.FieldError{Field: "items", Message: validation.MsgQuantity})
		default:
			lines = append(lines, cart.Line{Item: item, Quantity: in.Quantity, Notes: in.Notes})
		}
	}
	return cart.Restore(lines), errs, nil
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, itemErrs, err := h.orderCart(r, payload)
	if err != nil {
		writeCartError(w, err)
		return
	}

	var contact domain.Contact
	if payload.Customer != nil {
		contact = *payload.Customer
	}
	req := service.OrderFromCart(state, contact, payload.DeliveryMethod, payload.Notes, time.Now())
	if payload.Customer == nil {
		req.Customer = nil
	}

	if len(itemErrs) > 0 {
		errs := itemErrs
		for _, e := range h.Orders.Validate(req).Errors {
			if e.Field != "items" {
				errs = append(errs, e)
			}
		}
		writeJSON(w, http.StatusUnprocessableEntity, domain.SubmitResult{
			Success: false,
			Message: "please check the items in your order",
			Errors:  errs,
		})
		return
	}

	pending, err := h.Orders.Submit(r.Context(), payload.SessionID, req)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}
	result, ok := h.await(w, r, pending)
	if !ok {
		return
	}

	// Only the ordered lines leave the cart; edits made while the order was
	// being processed stay.
	if result.Success && payload.SessionID != "" && len(payload.Items) == 0 {
		if _, err := h.Carts.Apply(r.Context(), payload.SessionID, cart.Checkout(state)); err != nil {
			log.Printf("failed to clear cart %s after order %s: %v", payload.SessionID, result.ID, err)
		}
	}
	writeJSON(w, submitStatus(result), result)
}

func (h *Handler) writeSubmitError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrSubmissionInFlight) {
		writeJSON(w, http.StatusConflict, domain.SubmitResult{Success: false, Message: err.Error()})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// await blocks on the submission. If the client goes away first the
// submission still completes in the background.
func (h *Handler) await(w http.ResponseWriter, r *http.Request, p *service.Pending) (domain.SubmitResult, bool) {
	result, err := p.Wait(r.Context())
	if err != nil {
		log.Printf("client left before submission settled: %v", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return domain.SubmitResult{}, false
	}
	return result, true
}

func submitStatus(result domain.SubmitResult) int {
	switch {
	case result.Success:
		return http.StatusCreated
	case len(result.Errors) > 0:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writePNG(w, png)
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (h *Handler) getReservationDates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"dates": h.Reservations.AvailableDates()})
}

func (h *Handler) getReservationTimes(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	times, err := h.Reservations.AvailableTimes(date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"date": date, "times": times})
}

type reservationPayload struct {
	SessionID string `json:"session_id"`
	domain.ReservationRequest
}

func (h *Handler) validateReservation(w http.ResponseWriter, r *http.Request) {
	var payload reservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Reservations.Validate(payload.ReservationRequest))
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var payload reservationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pending, err := h.Reservations.Submit(r.Context(), payload.SessionID, payload.ReservationRequest)
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}
	result, ok := h.await(w, r, pending)
	if !ok {
		return
	}
	writeJSON(w, submitStatus(result), result)
}

func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.Reservations.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
