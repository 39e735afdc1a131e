package domain

// Perk links a chat role to a recurring crown bonus paid by the scheduled payout.
type Perk struct {
	RoleID   string `json:"role_id" db:"role_id"`
	PerkName string `json:"perk_name" db:"perk_name"`
	Bonus    int64  `json:"bonus" db:"bonus"`
}

// Member is a community member as seen by the payout: identity plus held roles.
type Member struct {
	UserID      string
	DisplayName string
	RoleIDs     []string
}

// HasRole reports whether the member currently holds roleID
func (m Member) HasRole(roleID string) bool {
	for _, r := range m.RoleIDs {
		if r == roleID {
			return true
		}
	}
	return false
}

// PayoutCredit is one member's share of a payout run
type PayoutCredit struct {
	UserID string   `json:"user_id"`
	Amount int64    `json:"amount"`
	Perks  []string `json:"perks"`
}

// PayoutFailure records a member whose credit could not be applied
type PayoutFailure struct {
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

// PayoutReport summarizes a single payout run
type PayoutReport struct {
	MembersScanned int             `json:"members_scanned"`
	Credited       []PayoutCredit  `json:"credited"`
	Failures       []PayoutFailure `json:"failures,omitempty"`
	Cancelled      bool            `json:"cancelled"`
}

// TotalCredited sums every successful credit in the run
func (r *PayoutReport) TotalCredited() int64 {
	var total int64
	for _, c := range r.Credited {
		total += c.Amount
	}
	return total
}
