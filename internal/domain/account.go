package domain

// Account is a user's ledger, inventory and profile record, keyed by external identity.
type Account struct {
	UserID     string          `json:"user_id" db:"user_id"`
	Balance    int64           `json:"crowns" db:"balance"`
	Inventory  []InventoryItem `json:"inventory"`
	Characters []Character     `json:"characters"`
}

// InventoryItem is one stack in an account's inventory. Quantity is always positive at rest.
type InventoryItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Character is a roleplay character linked to an account profile.
type Character struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	SheetURL string `json:"sheet_url"`
}

// LeaderboardEntry is a single ranked row of the crown leaderboard
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	UserID  string `json:"user_id" db:"user_id"`
	Balance int64  `json:"crowns" db:"balance"`
}

// TransferResult reports both balances after a completed transfer
type TransferResult struct {
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	Amount      int64  `json:"amount"`
	FromBalance int64  `json:"from_balance"`
	ToBalance   int64  `json:"to_balance"`
}
