package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

func TestMarketplaces(t *testing.T) {
	t.Parallel()

	got := domain.Marketplaces()
	assert.Equal(t, []domain.Marketplace{
		domain.MarketplaceAmazon,
		domain.MarketplaceEbay,
		domain.MarketplaceWalmart,
		domain.MarketplaceBackmarket,
	}, got)

	got[0] = "mutated"
	assert.Equal(t, domain.MarketplaceAmazon, domain.Marketplaces()[0])
}

func TestParseMarketplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    domain.Marketplace
		wantErr bool
	}{
		{name: "exact", input: "ebay", want: domain.MarketplaceEbay},
		{name: "mixed case", input: "Amazon", want: domain.MarketplaceAmazon},
		{name: "surrounding space", input: "  backmarket ", want: domain.MarketplaceBackmarket},
		{name: "walmartmp alias", input: "WalmartMP", want: domain.MarketplaceWalmart},
		{name: "unknown", input: "etsy", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := domain.ParseMarketplace(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown marketplace")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvironmentFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.EnvironmentProduction, domain.EnvironmentFor(true))
	assert.Equal(t, domain.EnvironmentSandbox, domain.EnvironmentFor(false))
}
