package pricing

import (
	"math"
	"sort"
)

// offer is one way to buy a pack: its first-time double or a repeat purchase.
type offer struct {
	id, name   string
	tok, price int
}

// offers splits cat into one-shot first-time offers and repeatable ones.
func offers(cat Catalog, first FirstTimeState) (once, repeat []offer) {
	for _, p := range cat.Packs {
		if p.PriceCents <= 0 {
			continue
		}
		if p.FirstTimeX2 && first[p.ID] {
			once = append(once, offer{p.ID + "#x2", p.Name + " (x2)", p.Tokens * 2, p.PriceCents})
		}
		if tok := p.Tokens + p.BonusTokens; tok > 0 {
			repeat = append(repeat, offer{p.ID, p.Name, tok, p.PriceCents})
		}
	}
	return once, repeat
}

// subsets yields every subset of the first-time offers with its totals.
func subsets(once []offer, yield func(picked []offer, tok, price int)) {
	n := len(once)
	for mask := 0; mask < 1<<n; mask++ {
		var picked []offer
		tok, price := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				picked = append(picked, once[i])
				tok += once[i].tok
				price += once[i].price
			}
		}
		yield(picked, tok, price)
	}
}

// MinCostAtLeastTokens finds the cheapest combination granting at least
// targetTokens. First-time doubles can be used once each; repeat purchases
// are unbounded. Ties prefer more tokens.
func MinCostAtLeastTokens(cat Catalog, targetTokens int, first FirstTimeState) Plan {
	if targetTokens <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	once, repeat := offers(cat, first)

	const inf = math.MaxInt
	// cover[t] = min cost of repeat purchases granting at least t tokens
	cover := make([]int, targetTokens+1)
	pick := make([]int, targetTokens+1)
	for t := 1; t <= targetTokens; t++ {
		cover[t], pick[t] = inf, -1
		for i, o := range repeat {
			rest := max(t-o.tok, 0)
			if cover[rest] == inf {
				continue
			}
			if c := cover[rest] + o.price; c < cover[t] {
				cover[t], pick[t] = c, i
			}
		}
	}

	var (
		bestCost   = inf
		bestTok    int
		bestPicked []offer
		bestRest   int
	)
	subsets(once, func(picked []offer, tok, price int) {
		rest := max(targetTokens-tok, 0)
		if cover[rest] == inf {
			return
		}
		cost := price + cover[rest]
		total := tok + repeatTokens(repeat, pick, rest)
		if cost < bestCost || (cost == bestCost && total > bestTok) {
			bestCost, bestTok, bestPicked, bestRest = cost, total, picked, rest
		}
	})
	if bestCost == inf {
		return Plan{Currency: cat.Currency}
	}

	lines := append([]offer(nil), bestPicked...)
	for t := bestRest; t > 0; {
		o := repeat[pick[t]]
		lines = append(lines, o)
		t = max(t-o.tok, 0)
	}
	return buildPlan(cat, lines)
}

func repeatTokens(repeat []offer, pick []int, t int) int {
	sum := 0
	for t > 0 {
		o := repeat[pick[t]]
		sum += o.tok
		t = max(t-o.tok, 0)
	}
	return sum
}

// MaxTokensUnderBudget computes the maximum tokens purchasable with budgetCents.
// Prices are taken as pre-tax, so the budget is first reduced by the tax rate.
func MaxTokensUnderBudget(cat Catalog, budgetCents int, first FirstTimeState) Plan {
	if budgetCents <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	once, repeat := offers(cat, first)

	effBudget := budgetCents
	if cat.TaxRate > 0 {
		effBudget = int(math.Floor(float64(budgetCents) / (1 + cat.TaxRate)))
	}

	// best[c] = max repeat tokens with cost at most c
	best := make([]int, effBudget+1)
	choose := make([]int, effBudget+1)
	for c := 0; c <= effBudget; c++ {
		choose[c] = -1
		if c > 0 && best[c-1] > best[c] {
			best[c] = best[c-1]
		}
		for i, o := range repeat {
			if o.price <= c && best[c-o.price]+o.tok > best[c] {
				best[c] = best[c-o.price] + o.tok
				choose[c] = i
			}
		}
	}

	bestTok, bestSpend := -1, 0
	var bestPicked []offer
	bestRest := 0
	subsets(once, func(picked []offer, tok, price int) {
		if price > effBudget {
			return
		}
		rest := effBudget - price
		total := tok + best[rest]
		if total > bestTok || (total == bestTok && price < bestSpend) {
			bestTok, bestSpend, bestPicked, bestRest = total, price, picked, rest
		}
	})

	lines := append([]offer(nil), bestPicked...)
	for c := bestRest; c > 0; {
		if choose[c] == -1 {
			c--
			continue
		}
		o := repeat[choose[c]]
		lines = append(lines, o)
		c -= o.price
	}
	return buildPlan(cat, lines)
}

// buildPlan groups offers into line items ordered by pack id and price.
func buildPlan(cat Catalog, lines []offer) Plan {
	counts := map[offer]int{}
	for _, o := range lines {
		counts[o]++
	}

	plan := Plan{Currency: cat.Currency}
	for o, qty := range counts {
		sub := o.price * qty
		plan.Purchases = append(plan.Purchases, Purchase{
			PackID:     o.id,
			Name:       o.name,
			Qty:        qty,
			UnitPrice:  o.price,
			UnitTokens: o.tok,
			Subtotal:   sub,
		})
		plan.SubCents += sub
		plan.TotalTokens += o.tok * qty
	}
	sort.Slice(plan.Purchases, func(i, j int) bool {
		a, b := plan.Purchases[i], plan.Purchases[j]
		if a.UnitPrice != b.UnitPrice {
			return a.UnitPrice > b.UnitPrice
		}
		return a.PackID < b.PackID
	})
	plan.TaxCents, plan.TotalCents = applyTax(plan.SubCents, cat.TaxRate)
	return plan
}
