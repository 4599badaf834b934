package wallet

import (
	"github.com/shopspring/decimal"
)

// Totals aggregates a user's lifetime staking history.
type Totals struct {
	TotalStaked   decimal.Decimal `json:"total_staked"`
	TotalFees     decimal.Decimal `json:"total_fees"`
	TotalWinnings decimal.Decimal `json:"total_winnings"`
	Predictions   int64           `json:"predictions"`
}

// ActiveStake sums the user's stakes on markets that have not settled.
type ActiveStake struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int64           `json:"count"`
}

// WalletResponse is the user's points position.
type WalletResponse struct {
	PointsBalance    decimal.Decimal `json:"points_balance"`
	ActiveStake      decimal.Decimal `json:"active_stake"`
	OpenPredictions  int64           `json:"open_predictions"`
	LifetimeStaked   decimal.Decimal `json:"lifetime_staked"`
	LifetimeWinnings decimal.Decimal `json:"lifetime_winnings"`
	LifetimeFees     decimal.Decimal `json:"lifetime_fees"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	TotalPredictions int64           `json:"total_predictions"`
}
