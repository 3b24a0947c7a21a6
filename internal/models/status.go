package models

import (
	"fmt"
	"strings"
)

// SessionStatus is the lifecycle state of a PT session
type SessionStatus string

const (
	StatusScheduled SessionStatus = "scheduled"
	StatusCancelled SessionStatus = "cancelled"
	StatusCompleted SessionStatus = "completed"
)

// ParseSessionStatus accepts a status name in any case
func ParseSessionStatus(s string) (SessionStatus, error) {
	status := SessionStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("invalid session status %q. Use: scheduled, cancelled, completed", s)
	}
	return status, nil
}

// Valid reports whether s is one of the known statuses
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Active reports whether a session in this status still occupies its slot.
// Only cancelled sessions are released.
func (s SessionStatus) Active() bool {
	return s != StatusCancelled
}

// InvoiceStatus is the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
)

// ParseInvoiceStatus accepts an invoice status name in any case
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	status := InvoiceStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case InvoiceUnpaid, InvoicePaid:
		return status, nil
	}
	return "", fmt.Errorf("invalid invoice status %q. Use: unpaid, paid", s)
}

// Resource is a bookable dimension a session occupies
type Resource string

const (
	ResourceMember  Resource = "member"
	ResourceTrainer Resource = "trainer"
	ResourceRoom    Resource = "room"
)

// ParseResource accepts a resource name in any case
func ParseResource(s string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case ResourceMember, ResourceTrainer, ResourceRoom:
		return r, nil
	}
	return "", fmt.Errorf("invalid resource %q. Use: member, trainer, room", s)
}

// Column is the pt_sessions foreign key column for this resource
func (r Resource) Column() string {
	return string(r) + "_id"
}

// Table is the table holding rows of this resource
func (r Resource) Table() string {
	return string(r) + "s"
}
