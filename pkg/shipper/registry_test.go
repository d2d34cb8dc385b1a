package shipper_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/fedex/pkg/shipper"
	"github.com/tournevent/fedex/pkg/shipper/mock"
)

func TestRegistry_Register(t *testing.T) {
	registry := shipper.NewRegistry()

	mockCarrier := mock.New("test-carrier")
	registry.Register(mockCarrier)

	got, err := registry.Get("test-carrier")
	require.NoError(t, err, "carrier should be registered")
	assert.Equal(t, "test-carrier", got.Name())
}

func TestRegistry_Register_Override(t *testing.T) {
	registry := shipper.NewRegistry()

	// Register first carrier
	registry.Register(mock.New("test-carrier"))
	assert.Equal(t, 1, registry.Count())

	// Register again with same name should override
	registry.Register(mock.New("test-carrier"))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_Get_NotFound(t *testing.T) {
	registry := shipper.NewRegistry()

	_, err := registry.Get("nonexistent")
	assert.Error(t, err, "should return error for unregistered carrier")
	assert.True(t, errors.Is(err, shipper.ErrCarrierNotFound))
}

func TestRegistry_All(t *testing.T) {
	registry := shipper.NewRegistry()

	registry.Register(mock.New("carrier-a"))
	registry.Register(mock.New("carrier-b"))
	registry.Register(mock.New("carrier-c"))

	all := registry.All()
	assert.Len(t, all, 3)
}

func TestRegistry_Names(t *testing.T) {
	registry := shipper.NewRegistry()

	registry.Register(mock.New("fedex"))
	registry.Register(mock.New("ups"))
	registry.Register(mock.New("usps"))

	names := registry.Names()
	assert.Len(t, names, 3)
	assert.Contains(t, names, "fedex")
	assert.Contains(t, names, "ups")
	assert.Contains(t, names, "usps")
}

func TestRegistry_Count(t *testing.T) {
	registry := shipper.NewRegistry()
	assert.Equal(t, 0, registry.Count())

	registry.Register(mock.New("carrier-a"))
	assert.Equal(t, 1, registry.Count())

	registry.Register(mock.New("carrier-b"))
	assert.Equal(t, 2, registry.Count())
}

func TestRegistry_GetAllQuotes(t *testing.T) {
	registry := shipper.NewRegistry()

	registry.Register(mock.New("fedex"))
	registry.Register(mock.New("ups"))

	req := &shipper.QuoteRequest{
		Origin: shipper.Location{
			Name:        "Sender",
			Address1:    "10 Main St",
			City:        "Memphis",
			PostalCode:  "38103",
			CountryCode: "US",
			Phone:       "901-555-1234",
		},
		Destination: shipper.Location{
			Name:        "Receiver",
			Address1:    "55 Pine Ave",
			City:        "Seattle",
			PostalCode:  "98101",
			CountryCode: "US",
			Phone:       "206-555-5678",
		},
		Packages: []shipper.Package{
			{
				WeightGrams: 2000,
				LengthCM:    30,
				WidthCM:     20,
				HeightCM:    10,
			},
		},
	}

	ctx := context.Background()
	results, errs := registry.GetAllQuotes(ctx, req)

	assert.Empty(t, errs, "should have no errors from mock carriers")
	assert.Len(t, results, 2, "should have results from both carriers")

	for _, result := range results {
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Estimates)
	}
}

func TestRegistry_GetAllQuotes_Empty(t *testing.T) {
	registry := shipper.NewRegistry()

	req := &shipper.QuoteRequest{
		Origin: shipper.Location{
			Name: "Test",
		},
	}

	ctx := context.Background()
	results, errs := registry.GetAllQuotes(ctx, req)

	assert.Empty(t, results, "should return empty results for empty registry")
	assert.NotEmpty(t, errs, "should return error for empty registry")
}

func TestRegistry_GetQuotesFromCarriers_Success(t *testing.T) {
	registry := shipper.NewRegistry()

	registry.Register(mock.New("fedex"))
	registry.Register(mock.New("ups"))
	registry.Register(mock.New("usps"))

	req := &shipper.QuoteRequest{
		Origin:      shipper.Location{PostalCode: "38103", CountryCode: "US"},
		Destination: shipper.Location{PostalCode: "98101", CountryCode: "US"},
		Packages:    []shipper.Package{{WeightGrams: 2000}},
	}

	ctx := context.Background()
	// Only request quotes from 2 carriers
	results, errs := registry.GetQuotesFromCarriers(ctx, req, []string{"fedex", "usps"})

	assert.Empty(t, errs)
	assert.Len(t, results, 2)
}

func TestRegistry_GetQuotesFromCarriers_EmptyCarriers(t *testing.T) {
	registry := shipper.NewRegistry()

	registry.Register(mock.New("fedex"))
	registry.Register(mock.New("ups"))

	req := &shipper.QuoteRequest{
		Origin:      shipper.Location{PostalCode: "38103", CountryCode: "US"},
		Destination: shipper.Location{PostalCode: "98101", CountryCode: "US"},
	}

	ctx := context.Background()
	// Empty carriers list should get all quotes
	results, errs := registry.GetQuotesFromCarriers(ctx, req, []string{})

	assert.Empty(t, errs)
	assert.Len(t, results, 2, "should get quotes from all carriers when empty list")
}

func TestRegistry_GetQuotesFromCarriers_NotFound(t *testing.T) {
	registry := shipper.NewRegistry()

	registry.Register(mock.New("fedex"))

	req := &shipper.QuoteRequest{
		Origin:      shipper.Location{PostalCode: "38103", CountryCode: "US"},
		Destination: shipper.Location{PostalCode: "98101", CountryCode: "US"},
	}

	ctx := context.Background()
	results, errs := registry.GetQuotesFromCarriers(ctx, req, []string{"nonexistent"})

	assert.Len(t, results, 0)
	assert.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], shipper.ErrCarrierNotFound))
}
