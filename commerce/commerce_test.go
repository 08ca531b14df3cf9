package commerce

import (
	"encoding/json"
	"testing"
)

func TestMoney_RoundTripJSON(t *testing.T) {
	m, err := NewMoney("19.99", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Amount.Equal(m.Amount) || back.Currency != m.Currency {
		t.Errorf("round trip mismatch: %v vs %v", back, m)
	}
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	usd, _ := NewMoney("1.00", "USD")
	eur, _ := NewMoney("1.00", "EUR")
	if _, err := usd.Add(eur); err == nil {
		t.Error("expected currency mismatch error")
	}
}

func TestMoney_MulInt(t *testing.T) {
	m, _ := NewMoney("2.50", "USD")
	got := m.MulInt(3)
	if got.String() != "7.5 USD" {
		t.Errorf("expected 7.5 USD, got %s", got)
	}
}

func TestLineItem_Subtotal(t *testing.T) {
	price, _ := NewMoney("10.00", "USD")
	li := LineItem{Quantity: 4, UnitPrice: price}
	if got := li.Subtotal(); got.Amount.String() != "40" {
		t.Errorf("expected 40, got %s", got.Amount)
	}
}

func TestCart_FindItem(t *testing.T) {
	cart := Cart{LineItems: []LineItem{{ID: "a"}, {ID: "b"}}}
	if _, ok := cart.FindItem("b"); !ok {
		t.Error("expected to find item b")
	}
	if _, ok := cart.FindItem("z"); ok {
		t.Error("did not expect to find item z")
	}
}

func TestClassOf_CoversOperationSet(t *testing.T) {
	cases := map[Operation]Class{
		OpGetCustomer:    ClassCustomer,
		OpGetCart:        ClassCart,
		OpAddCartItem:    ClassCart,
		OpGetWishlist:    ClassWishlist,
		OpSearchProducts: ClassCatalog,
		OpGetProduct:     ClassCatalog,
	}
	for op, want := range cases {
		if got := ClassOf(op); got != want {
			t.Errorf("%s: expected class %s, got %s", op, want, got)
		}
	}
}

func TestOperation_IsMutation(t *testing.T) {
	if !OpAddCartItem.IsMutation() {
		t.Error("addCartItem is a mutation")
	}
	if OpGetCart.IsMutation() {
		t.Error("getCart is not a mutation")
	}
	if !OpLogin.IsMutation() {
		t.Error("login changes session state and counts as a mutation")
	}
}
