// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitProposalRequest: proposal fields plus the ordered service list
  - UpdateStatusRequest: status, notes

# Response Types

Types for JSON responses:

  - SubmitProposalResponse: id, success, message
  - UpdateStatusResponse: success, updated (rows affected)
  - DeleteProposalResponse: success, deleted (rows affected)
  - AnalyticsReport: combined aggregate object
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Proposal: one customer farming-service quote
  - ServiceLine: one priced service within a proposal
  - ServiceCount: service name with its frequency across all lines

Optional proposal attributes are pointer-typed so a missing value
round-trips as SQL NULL rather than a zero value. Subtotal, discount and
total are opaque currency text ("$1,234.56") preserved exactly as
submitted; only the analytics aggregation ever parses them.

# Constants

Status values:

	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
*/
package models
