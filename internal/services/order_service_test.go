package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"salesdash-backend/internal/models"
)

func TestTotalSumsPriceTimesQuantity(t *testing.T) {
	lines := []models.EditOrderLine{
		{ProductID: "p1", Quantity: 3, Price: 5},
		{ProductID: "p2", Quantity: 2, Price: 10},
	}
	if got := Total(lines); got != 35 {
		t.Fatalf("Total = %v, want 35", got)
	}

	// Dropping a line re-derives the total, it is never carried over.
	if got := Total(lines[1:]); got != 20 {
		t.Fatalf("Total after drop = %v, want 20", got)
	}
}

func TestTotalDecimalExactness(t *testing.T) {
	// 0.1 * 3 is not exact in binary floats; decimal keeps it at 0.3.
	lines := []models.EditOrderLine{{ProductID: "p1", Quantity: 3, Price: 0.1}}
	if got := Total(lines); got != 0.3 {
		t.Fatalf("Total = %v, want 0.3", got)
	}
}

func TestEditRecomputesTotalAndFillsPrices(t *testing.T) {
	var submitted models.EditOrderRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/order/editOrder/o1", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&submitted)
		json.NewEncoder(w).Encode(models.Order{
			ID:          "o1",
			TotalAmount: submitted.TotalAmount,
			Status:      models.OrderStatusPending,
		})
	})

	api := newTestAPI(t, mux)
	products := NewProductService(api)
	products.products = []models.Product{{ID: "p1", Name: "Soap", Price: 5}}
	svc := NewOrderService(api, products)
	svc.orders = []models.Order{{ID: "o1", TotalAmount: 35}}

	// The caller's total is ignored and the line price comes from the
	// catalog.
	_, err := svc.Edit(context.Background(), "o1", models.EditOrderRequest{
		Products:    []models.EditOrderLine{{ProductID: "p1", Quantity: 4}},
		TotalAmount: 9999,
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if submitted.TotalAmount != 20 {
		t.Fatalf("submitted total = %v, want 20", submitted.TotalAmount)
	}
	if submitted.Products[0].Price != 5 {
		t.Fatalf("submitted price = %v, want 5 from catalog", submitted.Products[0].Price)
	}
	if got, _ := svc.Get("o1"); got.TotalAmount != 20 {
		t.Fatalf("snapshot total = %v, want 20", got.TotalAmount)
	}
}

func TestEditRefreshesCatalogOnPriceMiss(t *testing.T) {
	var submitted models.EditOrderRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ProductListResponse{
			Products: []models.Product{{ID: "p9", Name: "Detergent", Price: 7}},
		})
	})
	mux.HandleFunc("/api/order/editOrder/o1", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&submitted)
		json.NewEncoder(w).Encode(models.Order{ID: "o1", TotalAmount: submitted.TotalAmount})
	})

	api := newTestAPI(t, mux)
	// Catalog never listed this session; the miss triggers one refresh.
	svc := NewOrderService(api, NewProductService(api))
	svc.orders = []models.Order{{ID: "o1"}}

	_, err := svc.Edit(context.Background(), "o1", models.EditOrderRequest{
		Products: []models.EditOrderLine{{ProductID: "p9", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if submitted.Products[0].Price != 7 {
		t.Fatalf("submitted price = %v, want 7 from refreshed catalog", submitted.Products[0].Price)
	}
	if submitted.TotalAmount != 14 {
		t.Fatalf("submitted total = %v, want 14", submitted.TotalAmount)
	}
}

func TestEditRejectsUnknownProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.ProductListResponse{})
	})
	mux.HandleFunc("/api/order/editOrder/o1", func(w http.ResponseWriter, r *http.Request) {
		t.Error("edit submitted despite unpriceable line")
	})

	api := newTestAPI(t, mux)
	svc := NewOrderService(api, NewProductService(api))
	svc.orders = []models.Order{{ID: "o1", TotalAmount: 35}}

	_, err := svc.Edit(context.Background(), "o1", models.EditOrderRequest{
		Products: []models.EditOrderLine{{ProductID: "ghost", Quantity: 2}},
	})
	if !errors.Is(err, ErrUnknownProduct) {
		t.Fatalf("Edit = %v, want ErrUnknownProduct", err)
	}
	// The snapshot keeps its last known total.
	if got, _ := svc.Get("o1"); got.TotalAmount != 35 {
		t.Fatalf("snapshot total = %v, want untouched 35", got.TotalAmount)
	}
}

func TestDeleteOrderDropsRow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/order/o2", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	})

	svc := NewOrderService(newTestAPI(t, mux), nil)
	svc.orders = []models.Order{{ID: "o1"}, {ID: "o2"}, {ID: "o3"}}

	if err := svc.Delete(context.Background(), "o2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, o := range svc.List() {
		if o.ID == "o2" {
			t.Fatal("deleted order still present in snapshot")
		}
	}
	if len(svc.List()) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(svc.List()))
	}
}
