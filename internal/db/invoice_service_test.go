package db

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/healthclub/internal/models"
)

func TestCreateInvoice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	f := newFixture(t, store)

	inv, err := store.CreateInvoice(ctx, InvoiceRequest{MemberID: f.members[0], Amount: decimal.RequireFromString("49.999"), Description: "Monthly plan"})
	require.NoError(t, err)
	assert.NotZero(t, inv.ID)
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)
	assert.Equal(t, "50.00", inv.Amount.StringFixed(2))

	var stored models.Invoice
	require.NoError(t, store.db.First(&stored, inv.ID).Error)
	assert.True(t, stored.Amount.Equal(decimal.RequireFromString("50")))

	top, err := store.CreateInvoice(ctx, InvoiceRequest{MemberID: f.members[0], Amount: decimal.RequireFromString("99999999.99")})
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", top.Amount.StringFixed(2))
	assert.Equal(t, models.InvoiceUnpaid, stored.Status)
}

func TestCreateInvoiceRejects(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	f := newFixture(t, store)

	_, err := store.CreateInvoice(ctx, InvoiceRequest{MemberID: f.members[0], Amount: decimal.Zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be greater than 0")

	// Rounds to zero cents
	_, err = store.CreateInvoice(ctx, InvoiceRequest{MemberID: f.members[0], Amount: decimal.RequireFromString("0.004")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be greater than 0")

	// Does not fit numeric(10,2)
	_, err = store.CreateInvoice(ctx, InvoiceRequest{MemberID: f.members[0], Amount: decimal.RequireFromString("100000000")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount must be less than 100000000")

	var count int64
	require.NoError(t, store.db.Model(&models.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)

	_, err = store.CreateInvoice(ctx, InvoiceRequest{MemberID: 999, Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrNotFound)
}
