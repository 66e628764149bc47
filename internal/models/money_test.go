package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyMarshalFixedTwoDecimals(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.RequireFromString("2.8"))
	body, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(body) != `"2.80"` {
		t.Fatalf("want \"2.80\" got %s", string(body))
	}
}

func TestMoneyRoundsOnlyWhenWrapped(t *testing.T) {
	raw := decimal.RequireFromString("99.99").Mul(decimal.RequireFromString("0.07"))
	if raw.String() != "6.9993" {
		t.Fatalf("raw tax should keep full precision, got %s", raw.String())
	}
	if got := NewMoneyFromDecimal(raw).String(); got != "7.00" {
		t.Fatalf("display tax want 7.00 got %s", got)
	}
}

func TestMoneyUnmarshalStringAndNumber(t *testing.T) {
	var fromString Money
	if err := json.Unmarshal([]byte(`"129.99"`), &fromString); err != nil {
		t.Fatalf("unmarshal string failed: %v", err)
	}
	var fromNumber Money
	if err := json.Unmarshal([]byte(`129.99`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if !fromString.Equal(fromNumber.Decimal) {
		t.Fatalf("string %s and number %s should match", fromString, fromNumber)
	}
}

func TestProductCloneDetachesFeatures(t *testing.T) {
	p := Product{ID: 1, Features: []string{"a", "b"}}
	c := p.Clone()
	c.Features[0] = "changed"
	if p.Features[0] != "a" {
		t.Fatalf("clone should not share features slice")
	}
}
