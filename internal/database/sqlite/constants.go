package sqlite

// Operation names used in wrapped store errors
const (
	opBeginTx          = "failed to begin transaction"
	opCommitTx         = "failed to commit transaction"
	opEnsureAccount    = "failed to ensure account"
	opGetAccount       = "failed to get account"
	opDecodeAccount    = "failed to decode account"
	opUpdateBalance    = "failed to update balance"
	opUpdateInventory  = "failed to update inventory"
	opUpdateCharacters = "failed to update characters"
	opReplaceAccount   = "failed to replace account"
	opListAccounts     = "failed to list accounts"
	opLeaderboard      = "failed to get leaderboard"
	opGetItem          = "failed to get catalog item"
	opListItems        = "failed to list catalog items"
	opCategories       = "failed to list categories"
	opUpsertItem       = "failed to upsert catalog item"
	opUpsertPerk       = "failed to upsert perk"
	opDeletePerk       = "failed to delete perk"
	opListPerks        = "failed to list perks"
	opParseRoleID      = "invalid role id"
)
