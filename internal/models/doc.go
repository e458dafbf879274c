// Package models defines the core domain models for Ordena.
//
// # Models
//
//   - Restaurant: a place whose stock is tracked, shown on the list and on the map
//   - Product: one stocked item of a restaurant, measured in a unit
//
// # Design Principles
//
// 1. **Storage assigns identity**: IDs are SQLite row IDs, zero until inserted
// 2. **IDs for relationships**: Product references its restaurant by ID, never by pointer
// 3. **Values, not handles**: models are copied freely between flows; mutations go through storage
//
// # Transfer
//
// Restaurants cross screen boundaries as JSON payloads (see Restaurant.MarshalBinary),
// never through shared state.
package models
