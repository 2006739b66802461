// Package model defines shared data types used across the ingestor.
//
// All persisted types mirror the pm schema in migrations/schema.sql.
//
// Conventions:
//   - Money amounts (price, size, cost): decimal.Decimal, never float64
//   - Timestamps: time.Time, localized during normalization
//   - IDs: uuid.UUID surrogate keys assigned by the database
package model
