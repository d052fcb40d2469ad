package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senicpos/pos-api/pkg/apperror"
	"github.com/senicpos/pos-api/pkg/pagination"
)

func TestCreateCustomerDefaults(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	tenantID := uuid.New()

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID:  tenantID,
		FirstName: "Bo",
		LastName:  "Chan",
		Email:     "bo@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, customer.LoyaltyPoints)
	assert.True(t, customer.IsActive)
	assert.NotEqual(t, uuid.Nil, customer.ID)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	tenantID := uuid.New()

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID: tenantID, FirstName: "Bo", LastName: "Chan", Email: "bo@example.com",
	})
	require.NoError(t, err)

	_, err = svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID: tenantID, FirstName: "Other", LastName: "Person", Email: "bo@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	// Same email under a different tenant is fine
	_, err = svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID: uuid.New(), FirstName: "Bo", LastName: "Chan", Email: "bo@example.com",
	})
	require.NoError(t, err)
}

func TestListCustomersOrderingAndFiltering(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo)
	tenantID := uuid.New()

	for _, c := range []struct{ first, last, email string }{
		{"Zoe", "Young", "zoe@example.com"},
		{"Amy", "Adams", "amy@example.com"},
		{"Ben", "Adams", "ben@example.com"},
	} {
		_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
			TenantID: tenantID, FirstName: c.first, LastName: c.last, Email: c.email,
		})
		require.NoError(t, err)
	}

	// Deactivated customers disappear from listings
	gone, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID: tenantID, FirstName: "Gone", LastName: "Person", Email: "gone@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateCustomer(context.Background(), gone.ID))

	result, err := svc.ListCustomers(context.Background(), tenantID, &pagination.PaginationParams{Page: 1, PerPage: 10})
	require.NoError(t, err)

	require.Len(t, result.Items, 3)
	assert.Equal(t, "Amy", result.Items[0].FirstName)
	assert.Equal(t, "Ben", result.Items[1].FirstName)
	assert.Equal(t, "Zoe", result.Items[2].FirstName)
}

func TestAdjustLoyaltyPoints(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID: uuid.New(), FirstName: "Bo", LastName: "Chan", Email: "bo@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.AdjustLoyaltyPoints(context.Background(), customer.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.LoyaltyPoints)

	updated, err = svc.AdjustLoyaltyPoints(context.Background(), customer.ID, -30)
	require.NoError(t, err)
	assert.Equal(t, 20, updated.LoyaltyPoints)

	_, err = svc.AdjustLoyaltyPoints(context.Background(), customer.ID, -21)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Balance unchanged after the rejected redemption
	current, err := svc.GetCustomer(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, current.LoyaltyPoints)
}

func TestUpdateCustomerPartial(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		TenantID: uuid.New(), FirstName: "Bo", LastName: "Chan", Email: "bo@example.com",
	})
	require.NoError(t, err)

	newPhone := "+65 8000 0000"
	updated, err := svc.UpdateCustomer(context.Background(), customer.ID, &UpdateCustomerInput{
		Phone: &newPhone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bo", updated.FirstName)
	assert.Equal(t, "bo@example.com", updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, newPhone, *updated.Phone)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.GetCustomer(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
