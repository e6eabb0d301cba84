// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

// Package similarity selects the rater whose ratings most closely match a
// target rater's ratings.
//
// The distance between two raters is the mean absolute difference of their
// ratings over the items both have rated:
//
//	distance(a, b) = sum(|a_i - b_i|) / n    for the n items rated by both
//
// Raters that share no rated item have no distance at all. They are never
// treated as distance 0 or +Inf; they simply cannot be selected.
package similarity

import (
	"errors"
	"sort"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/ratings"
)

// ErrNoSimilarRater is returned when no candidate shares a rated item with
// the target. Callers are expected to fall back to a non-personalized strategy.
var ErrNoSimilarRater = errors.New("no similar rater found")

// Match is a candidate together with its distance to the target.
type Match struct {
	// RaterID is the candidate identifier.
	RaterID int `json:"rater_id"`

	// Distance is the mean absolute rating difference over shared items.
	Distance float64 `json:"distance"`

	// Overlap is the number of items rated by both target and candidate.
	Overlap int `json:"overlap"`
}

// MeanAbsoluteDifference returns the mean absolute difference between a and b
// over the positions where both hold a rating, and the number of such
// positions. With no overlap it returns 0, 0; callers must check the count.
//
// Positions beyond the shorter slice are ignored.
func MeanAbsoluteDifference(a, b []ratings.Rating) (float64, int) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	sum, overlap := 0, 0
	for i := 0; i < n; i++ {
		if !a[i].Valid || !b[i].Valid {
			continue
		}
		d := a[i].Value - b[i].Value
		if d < 0 {
			d = -d
		}
		sum += d
		overlap++
	}

	if overlap == 0 {
		return 0, 0
	}
	return float64(sum) / float64(overlap), overlap
}

// FindMostSimilar returns the candidate in candidateIDs whose ratings in table
// are closest to targetID's.
//
// Candidates are considered in the order given. A candidate replaces the
// current best only with a strictly smaller distance, so on an exact tie the
// candidate that appears first in candidateIDs wins. Candidates with no
// overlap are skipped. Unregistered identities, target included, contribute no
// overlap.
//
// If no candidate overlaps with the target, ErrNoSimilarRater is returned.
func FindMostSimilar(table *ratings.Table, candidateIDs []int, targetID int) (Match, error) {
	target, ok := table.Row(targetID)
	if !ok {
		return Match{}, ErrNoSimilarRater
	}

	var best Match
	found := false
	for _, id := range candidateIDs {
		m, ok := compare(table, target, id)
		if !ok {
			continue
		}
		if !found || m.Distance < best.Distance {
			best = m
			found = true
		}
	}

	if !found {
		return Match{}, ErrNoSimilarRater
	}
	return best, nil
}

// Rank returns every candidate that overlaps with targetID, ordered by
// distance ascending. Equal distances keep their candidateIDs order, so the
// first element, if any, is what FindMostSimilar returns.
func Rank(table *ratings.Table, candidateIDs []int, targetID int) []Match {
	target, ok := table.Row(targetID)
	if !ok {
		return nil
	}

	matches := make([]Match, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		if m, ok := compare(table, target, id); ok {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}

// compare computes the distance from target to candidateID's row.
func compare(table *ratings.Table, target []ratings.Rating, candidateID int) (Match, bool) {
	row, ok := table.Row(candidateID)
	if !ok {
		return Match{}, false
	}

	distance, overlap := MeanAbsoluteDifference(target, row)
	if overlap == 0 {
		return Match{}, false
	}
	return Match{RaterID: candidateID, Distance: distance, Overlap: overlap}, true
}
