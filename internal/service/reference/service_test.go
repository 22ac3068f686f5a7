package reference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partexplorer/internal/model"
	"github.com/you-humble/partexplorer/internal/service/mocks"
)

func TestServiceLoad(t *testing.T) {
	t.Parallel()

	companies := []model.ReferenceCompany{
		{Name: "Auto Peças Silva", GroupName: "Grupo Silva", State: "sp"},
		{Name: gofakeit.Company(), State: "RJ"},
		{Name: gofakeit.Company(), State: "SP"},
		{Name: gofakeit.Company()},
	}
	brands := []model.ReferenceBrand{{Name: "Bosch"}}
	cities := []string{"Campinas", "Niterói"}

	type testCase struct {
		name   string
		setup  func(c *mocks.MockReferenceClient)
		assert func(t *testing.T, svc *service, err error)
	}

	tests := []testCase{
		{
			name: "all lists loaded",
			setup: func(c *mocks.MockReferenceClient) {
				c.On("Companies", mock.Anything).Return(companies, nil).Once()
				c.On("Brands", mock.Anything).Return(brands, nil).Once()
				c.On("Cities", mock.Anything).Return(cities, nil).Once()
			},
			assert: func(t *testing.T, svc *service, err error) {
				require.NoError(t, err)
				ctx := context.Background()

				got, err := svc.Companies(ctx)
				require.NoError(t, err)
				assert.Equal(t, companies, got)

				gotBrands, err := svc.Brands(ctx)
				require.NoError(t, err)
				assert.Equal(t, brands, gotBrands)

				gotCities, err := svc.Cities(ctx)
				require.NoError(t, err)
				assert.Equal(t, cities, gotCities)

				states, err := svc.States(ctx)
				require.NoError(t, err)
				assert.Equal(t, []string{"RJ", "SP"}, states)
			},
		},
		{
			name: "transient failure is retried",
			setup: func(c *mocks.MockReferenceClient) {
				c.On("Companies", mock.Anything).Return(nil, model.ErrNetworkFailure).Twice()
				c.On("Companies", mock.Anything).Return(companies, nil).Once()
				c.On("Brands", mock.Anything).Return(brands, nil).Once()
				c.On("Cities", mock.Anything).Return(cities, nil).Once()
			},
			assert: func(t *testing.T, svc *service, err error) {
				require.NoError(t, err)
				got, err := svc.Companies(context.Background())
				require.NoError(t, err)
				assert.Len(t, got, len(companies))
			},
		},
		{
			name: "malformed response is not retried",
			setup: func(c *mocks.MockReferenceClient) {
				c.On("Companies", mock.Anything).Return(nil, model.ErrMalformedResponse).Once()
				c.On("Brands", mock.Anything).Return(brands, nil).Maybe()
				c.On("Cities", mock.Anything).Return(cities, nil).Maybe()
			},
			assert: func(t *testing.T, svc *service, err error) {
				require.ErrorIs(t, err, model.ErrMalformedResponse)
				assert.False(t, svc.loaded)
			},
		},
		{
			name: "retries exhausted",
			setup: func(c *mocks.MockReferenceClient) {
				c.On("Companies", mock.Anything).Return(companies, nil).Maybe()
				c.On("Brands", mock.Anything).Return(nil, errors.New("connection reset")).Times(3)
				c.On("Cities", mock.Anything).Return(cities, nil).Maybe()
			},
			assert: func(t *testing.T, svc *service, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection reset")
				assert.False(t, svc.loaded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockReferenceClient(t)
			tt.setup(client)

			svc := NewReferenceService(client, 2, time.Millisecond)
			tt.assert(t, svc, svc.Load(context.Background()))
		})
	}
}

func TestServiceIsCompany(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockReferenceClient(t)
	client.On("Companies", mock.Anything).Return([]model.ReferenceCompany{
		{Name: "Auto Peças Silva", GroupName: "Grupo Silva"},
		{Name: "Distribuidora Norte"},
	}, nil).Once()
	client.On("Brands", mock.Anything).Return([]model.ReferenceBrand{}, nil).Once()
	client.On("Cities", mock.Anything).Return([]string{}, nil).Once()

	svc := NewReferenceService(client, 1, time.Millisecond)
	ctx := context.Background()

	// The first call loads lazily; later calls reuse the held lists.
	assert.True(t, svc.IsCompany(ctx, "auto peças silva"))
	assert.True(t, svc.IsCompany(ctx, " GRUPO SILVA "))
	assert.True(t, svc.IsCompany(ctx, "Distribuidora Norte"))
	assert.False(t, svc.IsCompany(ctx, "pastilha de freio"))
	assert.False(t, svc.IsCompany(ctx, ""))
}

func TestServiceIsCompanyWithoutData(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockReferenceClient(t)
	client.On("Companies", mock.Anything).Return(nil, model.ErrMalformedResponse)
	client.On("Brands", mock.Anything).Return([]model.ReferenceBrand{}, nil).Maybe()
	client.On("Cities", mock.Anything).Return([]string{}, nil).Maybe()

	svc := NewReferenceService(client, 0, time.Millisecond)

	assert.False(t, svc.IsCompany(context.Background(), "Auto Peças Silva"))

	_, err := svc.Companies(context.Background())
	require.ErrorIs(t, err, model.ErrServiceUnavailable)
}
