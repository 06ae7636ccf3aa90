// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

// ResourceKind is one of the backed-up resource families. Its value is the
// letter used to select it on the command line.
type ResourceKind byte

const (
	KindContacts    ResourceKind = 't'
	KindFavorites   ResourceKind = 'f'
	KindGroups      ResourceKind = 'r'
	KindCollections ResourceKind = 'c'
	KindSets        ResourceKind = 's'
	KindGalleries   ResourceKind = 'g'
	KindPhotos      ResourceKind = 'p'
	KindProfile     ResourceKind = 'o'
)

// AllKinds lists every kind in sync order.
var AllKinds = []ResourceKind{
	KindContacts,
	KindFavorites,
	KindGroups,
	KindCollections,
	KindSets,
	KindGalleries,
	KindPhotos,
	KindProfile,
}

// DefaultLimit selects every kind.
const DefaultLimit = "cfgoprst"

// String returns the kind name.
func (k ResourceKind) String() string {
	switch k {
	case KindContacts:
		return "contacts"
	case KindFavorites:
		return "favorites"
	case KindGroups:
		return "groups"
	case KindCollections:
		return "collections"
	case KindSets:
		return "sets"
	case KindGalleries:
		return "galleries"
	case KindPhotos:
		return "photos"
	case KindProfile:
		return "profile"
	default:
		return fmt.Sprintf("kind(%c)", byte(k))
	}
}

func (k ResourceKind) known() bool {
	for _, kk := range AllKinds {
		if kk == k {
			return true
		}
	}
	return false
}

// Kinds is a set of resource kinds.
type Kinds map[ResourceKind]struct{}

// ParseKinds turns a limit string such as "cfs" into a set. Repeated letters
// are allowed; unknown ones are reported together.
func ParseKinds(limit string) (Kinds, error) {
	kinds := make(Kinds, len(limit))
	var unknown []string
	for i := 0; i < len(limit); i++ {
		k := ResourceKind(limit[i])
		if !k.known() {
			unknown = append(unknown, string(limit[i]))
			continue
		}
		kinds[k] = struct{}{}
	}
	if len(unknown) > 0 {
		return kinds, fmt.Errorf("%w: %s", ErrUnknownKind, strings.Join(unknown, ""))
	}
	return kinds, nil
}

// Has reports whether k is in the set.
func (ks Kinds) Has(k ResourceKind) bool {
	_, ok := ks[k]
	return ok
}

// Ordered returns the kinds in sync order.
func (ks Kinds) Ordered() []ResourceKind {
	out := make([]ResourceKind, 0, len(ks))
	for _, k := range AllKinds {
		if ks.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// String returns the kinds as limit letters in sync order.
func (ks Kinds) String() string {
	var b strings.Builder
	for _, k := range ks.Ordered() {
		b.WriteByte(byte(k))
	}
	return b.String()
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses "YYYY-MM-DD" or "YYYY-MM-DD|YYYY-MM-DD". A single
// date is a one-day range.
func ParseDateRange(raw string) (DateRange, error) {
	parts := strings.Split(raw, "|")
	if len(parts) > 2 {
		return DateRange{}, fmt.Errorf("%w: only one or two dates may be given", ErrInvalidDateRange)
	}

	days := make([]time.Time, 0, 2)
	for _, p := range parts {
		d, err := time.Parse(DateLayout, strings.TrimSpace(p))
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %w", ErrInvalidDateRange, err)
		}
		days = append(days, d)
	}
	if len(days) == 1 {
		days = append(days, days[0])
	}

	if days[0].After(days[1]) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", ErrInvalidDateRange,
			days[0].Format(DateLayout), days[1].Format(DateLayout))
	}

	return DateRange{From: days[0], To: days[1]}, nil
}

// Days yields every day of the range in ascending order.
func (r DateRange) Days() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// String renders the range the way it is accepted on the command line.
func (r DateRange) String() string {
	return r.From.Format(DateLayout) + "|" + r.To.Format(DateLayout)
}

// SyncScope is what one run is asked to back up.
type SyncScope struct {
	Kinds   Kinds
	IDs     []string
	Dates   *DateRange
	Recurse bool
}

// NewSyncScope parses and validates the command-line selection. Empty ids
// are dropped. All violations are returned joined.
func NewSyncScope(limit string, ids []string, dates string, recurse bool) (SyncScope, error) {
	var errs []error

	kinds, err := ParseKinds(limit)
	if err != nil {
		errs = append(errs, err)
	}

	scope := SyncScope{Kinds: kinds, Recurse: recurse}
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			scope.IDs = append(scope.IDs, id)
		}
	}

	if dates != "" {
		r, err := ParseDateRange(dates)
		if err != nil {
			errs = append(errs, err)
		} else {
			scope.Dates = &r
		}
	}

	if err = scope.Validate(); err != nil {
		errs = append(errs, err)
	}

	return scope, errors.Join(errs...)
}

// Validate checks the combination rules between kinds, ids, dates and
// recursion.
func (s SyncScope) Validate() error {
	var errs []error

	if len(s.Kinds) == 0 {
		errs = append(errs, ErrEmptyScope)
	}

	exclusive := 0
	for _, k := range []ResourceKind{KindCollections, KindPhotos, KindSets} {
		if s.Kinds.Has(k) {
			exclusive++
		}
	}

	if len(s.IDs) > 0 {
		switch {
		case exclusive == 0:
			errs = append(errs, ErrIDsNeedExclusiveKind)
		case exclusive > 1:
			errs = append(errs, ErrMultipleExclusiveKinds)
		}

		if s.Recurse {
			if s.Kinds.Has(KindPhotos) {
				errs = append(errs, ErrRecursePhotos)
			}
		} else if s.Kinds.Has(KindCollections) {
			errs = append(errs, ErrCollectionsNeedRecurse)
		}
	} else if s.Recurse {
		errs = append(errs, ErrRecurseWithoutIDs)
	}

	if s.Dates != nil {
		if len(s.IDs) > 0 {
			errs = append(errs, ErrDatesWithIDs)
		}
		if len(s.Kinds) != 1 || !s.Kinds.Has(KindPhotos) {
			errs = append(errs, ErrDatesNeedPhotosOnly)
		}
	}

	return errors.Join(errs...)
}

// IDsFor returns the requested ids when they target kind k, nil otherwise.
func (s SyncScope) IDsFor(k ResourceKind) []string {
	switch k {
	case KindCollections, KindSets, KindPhotos:
		return s.IDs
	default:
		return nil
	}
}

// String renders the scope in a compact form used by the journal, for
// example "limit=s ids=72157,72158 recurse".
func (s SyncScope) String() string {
	parts := []string{"limit=" + s.Kinds.String()}
	if len(s.IDs) > 0 {
		parts = append(parts, "ids="+strings.Join(s.IDs, ","))
	}
	if s.Dates != nil {
		parts = append(parts, "date="+s.Dates.String())
	}
	if s.Recurse {
		parts = append(parts, "recurse")
	}
	return strings.Join(parts, " ")
}
