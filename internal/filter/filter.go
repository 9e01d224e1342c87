// internal/filter/filter.go

// Package filter turns the open-ended property_* query parameters of the
// catalog endpoints into structured per-property constraints.
package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	keyPrefix  = "property_"
	fromSuffix = "_from"
	toSuffix   = "_to"
)

// Spec is the constraint parsed for one property uid. Exactly one of Enum
// or Range is set.
type Spec struct {
	Enum  *EnumSpec
	Range *RangeSpec
}

// EnumSpec accepts products whose association carries one of Values.
type EnumSpec struct {
	Values []string
}

// RangeSpec accepts products whose numeric association falls inside the
// bounds. A nil bound is unconstrained.
type RangeSpec struct {
	From *int64
	To   *int64
}

// Parse extracts property filters from raw query parameters.
//
// Keys shaped property_<uid> accumulate into an EnumSpec; repeated keys
// union their values. Keys shaped property_<uid>_from / property_<uid>_to
// set RangeSpec bounds; a bound that is not a non-negative integer is
// silently skipped, and when every bound of a uid is skipped the uid
// contributes no filter at all. A uid that appears with both enum-shaped
// and range-shaped keys is rejected; the shape of the keys decides, not
// the validity of their values.
func Parse(query url.Values) (map[string]Spec, error) {
	enums := make(map[string][]string)
	ranges := make(map[string]*RangeSpec)

	for key, values := range query {
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		rest := strings.TrimPrefix(key, keyPrefix)

		switch {
		case strings.HasSuffix(rest, fromSuffix):
			uid := strings.TrimSuffix(rest, fromSuffix)
			setBound(ranges, uid, values, true)
		case strings.HasSuffix(rest, toSuffix):
			uid := strings.TrimSuffix(rest, toSuffix)
			setBound(ranges, uid, values, false)
		default:
			enums[rest] = append(enums[rest], values...)
		}
	}

	for uid := range enums {
		if _, ok := ranges[uid]; ok {
			return nil, fmt.Errorf("property %q mixes value and range filters", uid)
		}
	}

	specs := make(map[string]Spec, len(enums)+len(ranges))
	for uid, values := range enums {
		specs[uid] = Spec{Enum: &EnumSpec{Values: values}}
	}
	for uid, r := range ranges {
		// A range whose every bound was malformed is not a constraint.
		if r.From == nil && r.To == nil {
			continue
		}
		specs[uid] = Spec{Range: r}
	}

	return specs, nil
}

func setBound(ranges map[string]*RangeSpec, uid string, values []string, from bool) {
	r, ok := ranges[uid]
	if !ok {
		r = &RangeSpec{}
		ranges[uid] = r
	}

	// Last valid occurrence wins for repeated bound keys.
	for _, raw := range values {
		bound, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			continue
		}
		value := int64(bound)
		if from {
			r.From = &value
		} else {
			r.To = &value
		}
	}
}
