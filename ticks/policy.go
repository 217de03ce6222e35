// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// A SnapPolicy selects the set of intervals that a rounded tick
// interval is snapped to.
type SnapPolicy int

const (
	// SnapNone snaps to the standard intervals 1, 5, 10, 20, 25,
	// 50, and 100, and never goes below 1.
	SnapNone SnapPolicy = iota

	// SnapDecimal is like SnapNone, but allows an interval of 0.5.
	SnapDecimal

	// SnapMinutes snaps to time-of-day intervals measured in
	// minutes: 1, 5, 15, 30, 60, 120, 180, 240, 360, and 720.
	SnapMinutes

	// SnapSeconds snaps to time-of-day intervals measured in
	// seconds, from 1 second up to 12 hours.
	SnapSeconds

	// SnapOff leaves the nice-rounded interval alone.
	SnapOff
)

// ErrUnknownPolicy is returned when parsing an unrecognized policy
// name.
var ErrUnknownPolicy = errors.New("unknown snap policy")

var policyNames = [...]string{
	SnapNone:    "none",
	SnapDecimal: "decimal",
	SnapMinutes: "minutes",
	SnapSeconds: "seconds",
	SnapOff:     "off",
}

func (p SnapPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("SnapPolicy(%d)", int(p))
	}
	return policyNames[p]
}

// ParseSnapPolicy returns the policy named s. Names are matched
// case-insensitively; the empty string is SnapNone.
func ParseSnapPolicy(s string) (SnapPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SnapNone, nil
	}
	for i, name := range policyNames {
		if s == name {
			return SnapPolicy(i), nil
		}
	}
	return SnapNone, fmt.Errorf("%w %q", ErrUnknownPolicy, s)
}

func (p SnapPolicy) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(policyNames) {
		return nil, fmt.Errorf("%w %d", ErrUnknownPolicy, int(p))
	}
	return []byte(policyNames[p]), nil
}

func (p *SnapPolicy) UnmarshalText(text []byte) error {
	v, err := ParseSnapPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Set and Type make *SnapPolicy usable as a command-line flag value.
func (p *SnapPolicy) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

func (p *SnapPolicy) Type() string {
	return "policy"
}

// A band rewrites any interval strictly between lo and hi to to.
type band struct {
	lo, hi, to float64
}

type bandTable struct {
	// floor is the smallest interval the policy allows.
	floor float64
	bands []band
}

var standardBands = []band{
	{0.5, 1, 1},
	{1, 5, 5},
	{5, 10, 10},
	{10, 20, 20},
	{20, 25, 25},
	{25, 50, 50},
	{50, 100, 100},
}

var policyTables = [...]bandTable{
	SnapNone:    {1, standardBands},
	SnapDecimal: {0.5, standardBands},
	SnapMinutes: {1, []band{
		{1, 5, 5},
		{5, 15, 15},
		{15, 30, 30},
		{30, 60, 60},
		{60, 120, 120},
		{120, 180, 180},
		{180, 240, 240},
		{240, 360, 360},
		{360, 720, 720},
	}},
	SnapSeconds: {1, []band{
		{1, 10, 10},
		{10, 30, 30},
		{30, 60, 60},
		{60, 300, 300},
		{300, 900, 900},
		{900, 1800, 1800},
		{1800, 3600, 3600},
		{3600, 7200, 7200},
		{7200, 10800, 10800},
		{10800, 14400, 14400},
		{14400, 21600, 21600},
		{21600, 43200, 43200},
	}},
	SnapOff: {math.Inf(-1), nil},
}

// Snap remaps interval through p's bands.
//
// Each band is an open interval tested against the current,
// possibly already rewritten, value, from the lowest band up. A value
// exactly on a band boundary is left alone.
func (p SnapPolicy) Snap(interval float64) float64 {
	if p < 0 || int(p) >= len(policyTables) {
		p = SnapNone
	}
	t := &policyTables[p]
	if interval < t.floor {
		interval = t.floor
	}
	for _, b := range t.bands {
		if interval > b.lo && interval < b.hi {
			interval = b.to
		}
	}
	return interval
}
