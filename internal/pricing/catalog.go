package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Pack models a purchasable SKU in the store.
type Pack struct {
	ID          string // SKU id, e.g., "6480"
	Name        string // display name, e.g., "6480 Oneiric Shards"
	Tokens      int    // base tokens granted
	BonusTokens int    // extra tokens on repeat purchases
	FirstTimeX2 bool   // first purchase grants 2x Tokens instead of the bonus
	PriceCents  int    // price in minor units (e.g., cents)
}

// Catalog is a regional product catalog and tax info.
type Catalog struct {
	TokenName string // e.g., "Oneiric Shard"
	Currency  string // ISO code, e.g., "USD"
	// TaxRate is applied on the subtotal; use 0 for tax-inclusive prices.
	TaxRate float64
	Packs   []Pack
}

// OneiricShards is the top-up store. Shards exchange 1:1 into Stellar Jade.
func OneiricShards() Catalog {
	return Catalog{
		TokenName: "Oneiric Shard",
		Currency:  "USD",
		Packs: []Pack{
			{ID: "60", Name: "60 Oneiric Shards", Tokens: 60, FirstTimeX2: true, PriceCents: 99},
			{ID: "300", Name: "300 Oneiric Shards", Tokens: 300, BonusTokens: 30, FirstTimeX2: true, PriceCents: 499},
			{ID: "980", Name: "980 Oneiric Shards", Tokens: 980, BonusTokens: 110, FirstTimeX2: true, PriceCents: 1499},
			{ID: "1980", Name: "1980 Oneiric Shards", Tokens: 1980, BonusTokens: 260, FirstTimeX2: true, PriceCents: 2999},
			{ID: "3280", Name: "3280 Oneiric Shards", Tokens: 3280, BonusTokens: 600, FirstTimeX2: true, PriceCents: 4999},
			{ID: "6480", Name: "6480 Oneiric Shards", Tokens: 6480, BonusTokens: 1600, FirstTimeX2: true, PriceCents: 9999},
		},
	}
}

// FirstTimeState describes per-pack first-time eligibility.
type FirstTimeState map[string]bool // packID -> true if first-time x2 is still available

// AllFirstTime marks every pack of cat as never bought.
func AllFirstTime(cat Catalog) FirstTimeState {
	st := make(FirstTimeState, len(cat.Packs))
	for _, p := range cat.Packs {
		st[p.ID] = p.FirstTimeX2
	}
	return st
}

// Plan summarizes a purchase plan.
type Plan struct {
	Purchases   []Purchase
	SubCents    int // subtotal before tax
	TaxCents    int
	TotalCents  int
	TotalTokens int
	Currency    string
}

// Purchase is one line item in the plan.
type Purchase struct {
	PackID     string
	Name       string
	Qty        int
	UnitPrice  int // cents
	UnitTokens int // tokens received per unit in this plan (x2/bonus applied)
	Subtotal   int // cents
}

// Total renders TotalCents in major units, e.g. "14.99".
func (p Plan) Total() string {
	return decimal.New(int64(p.TotalCents), -2).StringFixed(2)
}

// applyTax computes tax and total given a subtotal and a tax rate.
func applyTax(sub int, taxRate float64) (tax int, total int) {
	if taxRate <= 0 {
		return 0, sub
	}
	t := int(math.Round(float64(sub) * taxRate))
	return t, sub + t
}
