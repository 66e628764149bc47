package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopfront/internal/constants"
)

func TestCartServiceAddItem(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	view, err := s.cart.AddItem(ctx, "sess", 1, 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if view.TotalItems != 2 || view.TotalPrice.String() != "199.98" {
		t.Fatalf("unexpected cart %d/%s", view.TotalItems, view.TotalPrice)
	}
	if view.Summary.Shipping.String() != "0.00" || !view.Summary.FreeShipping {
		t.Fatalf("subtotal over threshold should ship free, got %s", view.Summary.Shipping)
	}

	view, err = s.cart.UpdateItem(ctx, "sess", 1, 1)
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if view.TotalPrice.String() != "99.99" {
		t.Fatalf("total want 99.99 got %s", view.TotalPrice)
	}
}

func TestCartServiceRejections(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	cases := []struct {
		name      string
		productID uint
		quantity  int
		want      error
	}{
		{name: "zero quantity", productID: 1, quantity: 0, want: ErrInvalidQuantity},
		{name: "negative quantity", productID: 1, quantity: -3, want: ErrInvalidQuantity},
		{name: "unknown product", productID: 999, quantity: 1, want: ErrProductNotFound},
		{name: "out of stock", productID: 6, quantity: 1, want: ErrProductOutOfStock},
		{name: "over line limit", productID: 1, quantity: constants.MaxCartLineQuantity + 1, want: ErrInvalidQuantity},
		{name: "overflowing quantity", productID: 1, quantity: math.MaxInt, want: ErrInvalidQuantity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.cart.AddItem(ctx, "sess", tc.productID, tc.quantity); !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}
	if view := s.cart.Get(ctx, "sess"); view.TotalItems != 0 {
		t.Fatalf("rejected adds must not change the cart, got %d items", view.TotalItems)
	}
}

func TestCartServiceUpdateZeroRemoves(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()
	_, _ = s.cart.AddItem(ctx, "sess", 1, 1)
	_, _ = s.cart.AddItem(ctx, "sess", 5, 1)

	view, err := s.cart.UpdateItem(ctx, "sess", 1, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductID != 5 {
		t.Fatalf("update to 0 should remove the line, got %+v", view.Items)
	}
	if view.Summary.Shipping.String() != "10.00" || view.Summary.Tax.String() != "2.52" || view.Summary.Total.String() != "48.51" {
		t.Fatalf("unexpected summary %+v", view.Summary)
	}

	view, err = s.cart.RemoveItem(ctx, "sess", 5)
	if err != nil || len(view.Items) != 0 {
		t.Fatalf("remove failed: %+v %v", view, err)
	}
	if _, err := s.cart.RemoveItem(ctx, "sess", 999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("remove unknown product want ErrProductNotFound got %v", err)
	}
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()
	_, _ = s.cart.AddItem(ctx, "a", 1, 1)
	if view := s.cart.Get(ctx, "b"); view.TotalItems != 0 {
		t.Fatalf("session b should have an empty cart")
	}
	if view := s.cart.Clear(ctx, "a"); view.TotalItems != 0 {
		t.Fatalf("clear should empty the cart")
	}
}

func TestCartServiceLineLimit(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	if _, err := s.cart.AddItem(ctx, "sess", 1, constants.MaxCartLineQuantity); err != nil {
		t.Fatalf("add up to the limit failed: %v", err)
	}
	if _, err := s.cart.AddItem(ctx, "sess", 1, 1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("add past the limit want ErrInvalidQuantity got %v", err)
	}
	if _, err := s.cart.UpdateItem(ctx, "sess", 1, constants.MaxCartLineQuantity+1); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("update past the limit want ErrInvalidQuantity got %v", err)
	}
	view := s.cart.Get(ctx, "sess")
	if view.TotalItems != constants.MaxCartLineQuantity {
		t.Fatalf("rejected changes must keep the cart, got %d items", view.TotalItems)
	}
}

func TestCartServiceReadsDoNotCreateCarts(t *testing.T) {
	s := newTestServices(t, nil)
	ctx := context.Background()

	_ = s.cart.Get(ctx, "ghost")
	_ = s.cart.Clear(ctx, "ghost")
	if _, err := s.cart.UpdateItem(ctx, "ghost", 1, 2); err != nil {
		t.Fatalf("update on unknown cart failed: %v", err)
	}
	if _, err := s.cart.RemoveItem(ctx, "ghost", 1); err != nil {
		t.Fatalf("remove on unknown cart failed: %v", err)
	}
	_ = s.checkout.Get(ctx, "ghost")
	_, _ = s.checkout.Reset(ctx, "ghost")
	if n := s.carts.Len(); n != 0 {
		t.Fatalf("reads must not create carts, got %d", n)
	}
	if n := s.checkout.sessions.Len(); n != 0 {
		t.Fatalf("reads must not create checkout sessions, got %d", n)
	}
}
