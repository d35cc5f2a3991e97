// Package domain defines the marketplace-neutral types shared by the
// credential providers, connectors and the bridge facade.
package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Marketplace identifies one of the supported marketplace APIs.
type Marketplace string

// Marketplace constants.
const (
	MarketplaceAmazon     Marketplace = "amazon"
	MarketplaceEbay       Marketplace = "ebay"
	MarketplaceWalmart    Marketplace = "walmart"
	MarketplaceBackmarket Marketplace = "backmarket"
)

var allMarketplaces = []Marketplace{
	MarketplaceAmazon,
	MarketplaceEbay,
	MarketplaceWalmart,
	MarketplaceBackmarket,
}

// Marketplaces returns every supported marketplace in a stable order.
func Marketplaces() []Marketplace {
	return slices.Clone(allMarketplaces)
}

// ParseMarketplace converts a user-supplied name into a Marketplace.
// Matching is case-insensitive; "walmartmp" is accepted as an alias.
func ParseMarketplace(s string) (Marketplace, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "walmartmp" {
		name = string(MarketplaceWalmart)
	}
	m := Marketplace(name)
	if !slices.Contains(allMarketplaces, m) {
		return "", fmt.Errorf("unknown marketplace %q", s)
	}
	return m, nil
}

// Environment names the deployment environment a provider targets.
type Environment string

// Environment constants.
const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// EnvironmentFor maps the production flag to an Environment.
func EnvironmentFor(production bool) Environment {
	if production {
		return EnvironmentProduction
	}
	return EnvironmentSandbox
}

// Order is a marketplace order reduced to the fields every marketplace
// exposes. Raw keeps the marketplace's full JSON document.
type Order struct {
	Marketplace Marketplace     `json:"marketplace"`
	ID          string          `json:"id"`
	Status      string          `json:"status,omitempty"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

// Return is a marketplace return or refund request.
type Return struct {
	Marketplace Marketplace     `json:"marketplace"`
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id,omitempty"`
	State       string          `json:"state,omitempty"`
	Raw         json.RawMessage `json:"raw,omitempty"`
}

// OrderQuery holds the filters understood by order listing endpoints.
// Connectors ignore the fields their marketplace does not support.
type OrderQuery struct {
	CreatedAfter time.Time
	Status       string
	Limit        int

	// MarketplaceIDs is required by Amazon SP-API (e.g. ATVPDKIKX0DER).
	MarketplaceIDs []string
}
