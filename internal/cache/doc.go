// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

// Package cache provides a small thread-safe TTL cache.
//
// The recommender caches the popular item averages here and clears the
// cache whenever the popularity snapshot is refreshed.
//
//	c := cache.New[[]models.ItemScore](5 * time.Minute)
//	defer c.Close()
//
//	if scores, ok := c.Get("popular_item_averages"); ok {
//	    return scores, nil
//	}
package cache
