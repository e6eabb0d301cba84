// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package recommend

import (
	"sort"

	"github.com/syedfarazhus/Ecommerce-Reccomender-System/internal/models"
)

// TopK returns the ids of the k best scores, highest score first and ties
// by ascending item id. The input is not modified.
func TopK(scores []models.ItemScore, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return []int{}
	}

	sorted := make([]models.ItemScore, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ItemID < sorted[j].ItemID
	})

	if len(sorted) > k {
		sorted = sorted[:k]
	}
	ids := make([]int, len(sorted))
	for i, s := range sorted {
		ids[i] = s.ItemID
	}
	return ids
}
