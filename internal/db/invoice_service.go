package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/balkashynov/healthclub/internal/models"
	"github.com/balkashynov/healthclub/internal/validation"
)

// InvoiceRequest holds the data for a new invoice
type InvoiceRequest struct {
	MemberID    uint            `json:"member_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0,lt=100000000"`
	Description string          `json:"description" validate:"max=255"`
}

// CreateInvoice bills a member. New invoices start unpaid.
func (s *Store) CreateInvoice(ctx context.Context, req InvoiceRequest) (*models.Invoice, error) {
	req.Description = strings.TrimSpace(req.Description)
	// Validate what will be stored, numeric(10,2)
	req.Amount = req.Amount.Round(2)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	invoice := models.Invoice{
		MemberID:    req.MemberID,
		CreatedAt:   time.Now().UTC(),
		Amount:      req.Amount,
		Status:      models.InvoiceUnpaid,
		Description: optional(req.Description),
	}

	err := s.WithinTx(ctx, func(tx *Tx) error {
		ok, err := tx.Exists(models.ResourceMember, req.MemberID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("member #%d: %w", req.MemberID, ErrNotFound)
		}
		if err := tx.db.Create(&invoice).Error; err != nil {
			return fmt.Errorf("creating invoice: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice created", "invoice_id", invoice.ID, "member_id", invoice.MemberID, "amount", invoice.Amount.StringFixed(2))
	return &invoice, nil
}
