package domain

// PurchaseQuote is the price of a prospective purchase, computed without mutating anything
type PurchaseQuote struct {
	Item      CatalogItem `json:"item"`
	Quantity  int         `json:"quantity"`
	TotalCost int64       `json:"total_cost"`
	Balance   int64       `json:"balance"`
}

// CanAfford reports whether the buyer's balance covers the quote
func (q *PurchaseQuote) CanAfford() bool {
	return q.Balance >= q.TotalCost
}

// Purchase is the outcome of a completed shop purchase
type Purchase struct {
	UserID    string `json:"user_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	TotalCost int64  `json:"total_cost"`
	Balance   int64  `json:"balance"`
	// Owned is the buyer's stack size for the item after the purchase
	Owned int `json:"owned"`
}
