// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is one page of a paginated remote listing.
//
// Pages is the total page count declared by the remote for the listing. It
// may change between calls, so consumers re-read it from every page.
type Page[T any] struct {
	Items []T
	Page  int
	Pages int
}
