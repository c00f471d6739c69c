// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// Amounts render as bare JSON numbers, matching the API contract.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
