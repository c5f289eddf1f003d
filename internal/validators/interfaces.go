// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules applied to requests before they
// reach the store.
//
// Every validator implements [Validator]. Field names passed to Validate
// restrict the check to those fields; without them every field of the value
// is checked. Request-body validators report all failing fields at once as
// [ValidationErrors] so the HTTP layer can return field-level detail.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
