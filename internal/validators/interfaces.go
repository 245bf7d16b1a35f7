// SPDX-License-Identifier: Apache-2.0

// Package validators checks request payloads against the business rules of
// the service layer.
//
// A Validator is injected into a service and called with the value to check
// and, optionally, the names of the fields to restrict the check to.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
