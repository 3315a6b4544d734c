// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Proposal status constants
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// Request types

type SubmitProposalRequest struct {
	OperationName string        `json:"operation_name"`
	FieldCount    *int          `json:"field_count,omitempty"`
	Acreage       *float64      `json:"acreage,omitempty"`
	CropType      *string       `json:"crop_type,omitempty"`
	StartDate     *string       `json:"start_date,omitempty"`
	FinishDate    *string       `json:"finish_date,omitempty"`
	Email         string        `json:"email"`
	Phone         *string       `json:"phone,omitempty"`
	Services      []ServiceLine `json:"services"`
	Subtotal      *string       `json:"subtotal,omitempty"`
	Discount      *string       `json:"discount,omitempty"`
	Total         *string       `json:"total,omitempty"`
}

type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

// Response types

type SubmitProposalResponse struct {
	ID      int64  `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type UpdateStatusResponse struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

type DeleteProposalResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// Domain types

type Proposal struct {
	ID            int64         `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	OperationName string        `json:"operation_name"`
	FieldCount    *int          `json:"field_count,omitempty"`
	Acreage       *float64      `json:"acreage,omitempty"`
	CropType      *string       `json:"crop_type,omitempty"`
	StartDate     *string       `json:"start_date,omitempty"`
	FinishDate    *string       `json:"finish_date,omitempty"`
	Email         string        `json:"email"`
	Phone         *string       `json:"phone,omitempty"`
	Services      []ServiceLine `json:"services"`
	Subtotal      *string       `json:"subtotal,omitempty"`
	Discount      *string       `json:"discount,omitempty"`
	Total         *string       `json:"total,omitempty"`
	Status        string        `json:"status"`
	Notes         *string       `json:"notes,omitempty"`
}

// ServiceLine is one priced service within a proposal. ID and ProposalID
// are only populated when a line is read back from the proposal_services
// table; inside the parent row's services blob a line is a plain snapshot.
type ServiceLine struct {
	ID          int64  `json:"id,omitempty"`
	ProposalID  int64  `json:"proposal_id,omitempty"`
	ServiceName string `json:"service_name"`
	Rate        string `json:"rate"`
	Cost        string `json:"cost"`
}

// Analytics types

type ServiceCount struct {
	ServiceName string `json:"service_name"`
	Count       int    `json:"count"`
}

// AnalyticsReport is the combined aggregate object. A pointer field is
// nil when its sub-query failed; the remaining keys are still populated.
type AnalyticsReport struct {
	TotalProposals      *int           `json:"totalProposals"`
	TotalValue          *float64       `json:"totalValue"`
	TotalValueFormatted *string        `json:"totalValueFormatted,omitempty"`
	AverageAcreage      *float64       `json:"averageAcreage"`
	TopServices         []ServiceCount `json:"topServices"`
	RecentProposals     []Proposal     `json:"recentProposals"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
