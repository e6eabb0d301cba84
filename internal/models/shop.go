// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

package models

import "time"

// Item is a catalogue entry.
type Item struct {
	ID       int     `json:"iid"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// Customer is a shopper. Curators are customers whose reviews are treated as
// expert opinion.
type Customer struct {
	ID   int    `json:"cid"`
	Name string `json:"name" validate:"required"`
}

// Purchase is one checkout by a customer.
type Purchase struct {
	ID         int        `json:"pid"`
	CustomerID int        `json:"cid"`
	Date       time.Time  `json:"date"`
	Lines      []LineItem `json:"lines" validate:"dive"`
}

// LineItem is one product line of a purchase.
type LineItem struct {
	ItemID   int `json:"iid"`
	Quantity int `json:"quantity" validate:"gte=1"`
}

// Review is a customer's rating of an item, 0 through 10.
type Review struct {
	CustomerID int `json:"cid"`
	ItemID     int `json:"iid"`
	Rating     int `json:"rating" validate:"gte=0,lte=10"`
}

// ItemScore is an item together with the value it is ranked by: an average
// rating for generic recommendations, a single curator rating otherwise.
type ItemScore struct {
	ItemID int     `json:"iid"`
	Score  float64 `json:"score"`
}

// Recommendation sources.
const (
	SourceCurator = "curator"
	SourceGeneric = "generic"
)

// Recommendation is a ranked list of item IDs, best first.
type Recommendation struct {
	CustomerID int    `json:"customer_id,omitempty"`
	Items      []int  `json:"items"`
	Source     string `json:"source"`
	CuratorID  int    `json:"curator_id,omitempty"`
	K          int    `json:"k"`

	// FallbackReason says why a personalised request got the generic list.
	FallbackReason string `json:"fallback_reason,omitempty"`
}

// CuratorMatch is the curator closest to a customer over the popular items
// both have rated.
type CuratorMatch struct {
	CustomerID int     `json:"customer_id"`
	CuratorID  int     `json:"curator_id"`
	Distance   float64 `json:"distance"`
	Overlap    int     `json:"overlap"`
}

// RepopulateStats reports the result of a snapshot refresh.
type RepopulateStats struct {
	PopularItems      int       `json:"popular_items"`
	DefinitiveRatings int       `json:"definitive_ratings"`
	DurationMS        int64     `json:"duration_ms"`
	CompletedAt       time.Time `json:"completed_at"`
}
