// Command example serves a validated JSON endpoint that answers invalid
// requests with an errdoc error document, and its OpenAPI description.
//
// Run:
//
//	go run ./_example
//
// Then POST to http://localhost:8080/orders and GET /openapi.json.
package main

import (
	"encoding/json"
	"log"
	"log/slog"
	"net/http"

	"github.com/Gobd/errdoc"
	"github.com/Gobd/errdoc/openapi"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Order is a sample request/response type.
type Order struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func (o *Order) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.CustomerName, validation.Required, validation.Length(1, 200)),
		validation.Field(&o.ItemCount, validation.Required, validation.Min(1)),
		validation.Field(&o.Total, validation.Required, validation.Min(0.01)),
	)
}

func main() {
	doc := openapi.DocBase("Example API", "Demonstrates errdoc", "0.1.0")
	openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
		Summary:   "Create an order",
		Request:   Order{},
		Response:  Order{},
		Validated: true,
	})

	http.HandleFunc("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc)
	})

	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var order Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		set, err := errdoc.FromValidation("order", &order, order.Validate())
		if err != nil {
			slog.Error("validating order", "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !set.Empty() {
			if err := errdoc.WriteHTTP(w, http.StatusBadRequest, set); err != nil {
				slog.Error("writing error document", "err", err)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(order)
	})

	slog.Info("listening", "addr", ":8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
