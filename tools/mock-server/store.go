package main

import (
	"fmt"
	"time"
)

// Access tokens issued by the token endpoints and required by the data
// endpoints.
const (
	amazonAccessToken  = "mock-amazon-access-token"
	ebayAccessToken    = "mock-ebay-access-token"
	walmartAccessToken = "mock-walmart-access-token"
	tokenLifetime      = 3600
)

// order is the marketplace-neutral seed every marketplace's document is
// rendered from.
type order struct {
	id      string
	status  string
	created time.Time
}

type store struct {
	amazon     []order
	ebay       []order
	walmart    []order
	backmarket []order

	// ebayReturns and walmartReturns map return IDs to order IDs.
	ebayReturns    map[string]string
	walmartReturns map[string]string
}

// newStore seeds three orders per marketplace, created one, two and three
// days before now.
func newStore(now time.Time) *store {
	st := &store{
		ebayReturns:    map[string]string{},
		walmartReturns: map[string]string{},
	}

	amazonStatus := []string{"Unshipped", "Shipped", "Canceled"}
	ebayStatus := []string{"NOT_STARTED", "IN_PROGRESS", "FULFILLED"}
	walmartStatus := []string{"Created", "Acknowledged", "Shipped"}
	backmarketStatus := []string{"1", "3", "9"}

	for i := range 3 {
		created := now.Add(-time.Duration(i+1) * 24 * time.Hour).Truncate(time.Second)

		st.amazon = append(st.amazon, order{
			id: fmt.Sprintf("111-0000000-000000%d", i+1), status: amazonStatus[i], created: created,
		})
		st.ebay = append(st.ebay, order{
			id: fmt.Sprintf("12-00000-0000%d", i+1), status: ebayStatus[i], created: created,
		})
		st.walmart = append(st.walmart, order{
			id: fmt.Sprintf("179627708302%d", i+1), status: walmartStatus[i], created: created,
		})
		st.backmarket = append(st.backmarket, order{
			id: fmt.Sprintf("%d", 1001+i), status: backmarketStatus[i], created: created,
		})
	}

	st.ebayReturns["5000000001"] = st.ebay[2].id
	st.walmartReturns["88000001"] = st.walmart[2].id
	return st
}

// find returns the order with id.
func find(orders []order, id string) (order, bool) {
	for _, o := range orders {
		if o.id == id {
			return o, true
		}
	}
	return order{}, false
}

// filter returns the orders created at or after since (when set) whose
// status matches (when set), capped at limit (when positive).
func filter(orders []order, since time.Time, status string, limit int) []order {
	out := []order{}
	for _, o := range orders {
		if !since.IsZero() && o.created.Before(since) {
			continue
		}
		if status != "" && o.status != status {
			continue
		}
		out = append(out, o)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
