// Ecommerce Recommender - Curator and Popularity Based Shopping Recommendations
// Copyright 2026 syedfarazhus
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/syedfarazhus/Ecommerce-Reccomender-System

/*
Package models defines the data structures shared between the store, the
recommender and the HTTP API.

Key Components:

  - Catalogue rows: Item, Customer, Purchase, LineItem, Review
  - ItemScore: an item with the rating it is ranked by
  - Recommendation: the ranked item list returned to clients, with its source
  - CuratorMatch: the curator matched to a customer and how close the match is
  - RepopulateStats: what a snapshot refresh wrote
  - APIResponse, Metadata, APIError: the JSON envelope used by every endpoint

Request inputs carry validate tags consumed by the internal/validation package.
*/
package models
