package settlement

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/agora/models"
)

// LineKind classifies one settlement line.
type LineKind string

const (
	LineWin    LineKind = "win"
	LineLoss   LineKind = "loss"
	LineRefund LineKind = "refund"
)

// Line is the computed settlement of one prediction: the amount to fix
// as its payout and credit to its owner.
type Line struct {
	PredictionID uuid.UUID
	UserID       uuid.UUID
	Payout       decimal.Decimal
	Kind         LineKind
}

// Plan is the full settlement of one market under one winning outcome.
// Building a plan mutates nothing; applying it is the caller's job.
type Plan struct {
	WinningOutcomeID uuid.UUID
	WinningPool      decimal.Decimal
	LosingPool       decimal.Decimal
	FullRefund       bool
	Lines            []Line
}

// TotalPayout sums the payout amounts across all lines.
func (p *Plan) TotalPayout() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Lines {
		total = total.Add(p.Lines[i].Payout)
	}
	return total
}

// Engine computes settlement plans. It holds no state and is safe for
// concurrent use.
type Engine struct{}

// NewEngine creates a new settlement engine
func NewEngine() *Engine {
	return &Engine{}
}

// BuildPlan computes the proportional settlement of a market. Winners
// split the losing pool in proportion to their share of the winning
// pool: payout = stake + (stake/winningPool) * losingPool. Losers are
// settled at zero. When nobody staked on the winning outcome the plan
// degrades to a full refund of every prediction.
func (e *Engine) BuildPlan(outcomes []models.Outcome, predictions []models.Prediction, winningOutcomeID uuid.UUID) (*Plan, error) {
	var winner *models.Outcome
	losingPool := decimal.Zero
	for i := range outcomes {
		if outcomes[i].ID == winningOutcomeID {
			winner = &outcomes[i]
		} else {
			losingPool = losingPool.Add(outcomes[i].TotalStaked)
		}
	}
	if winner == nil {
		return nil, models.ErrInvalidOutcome
	}

	plan := &Plan{
		WinningOutcomeID: winningOutcomeID,
		WinningPool:      winner.TotalStaked,
		LosingPool:       losingPool,
	}

	if plan.WinningPool.IsZero() {
		plan.FullRefund = true
		plan.Lines = refundLines(predictions)
		return plan, nil
	}

	for i := range predictions {
		p := &predictions[i]
		if p.OutcomeID == winningOutcomeID {
			share := p.StakeAmount.Div(plan.WinningPool)
			payout := p.StakeAmount.Add(share.Mul(losingPool))
			plan.Lines = append(plan.Lines, Line{
				PredictionID: p.ID,
				UserID:       p.UserID,
				Payout:       payout,
				Kind:         LineWin,
			})
		} else {
			plan.Lines = append(plan.Lines, Line{
				PredictionID: p.ID,
				UserID:       p.UserID,
				Payout:       decimal.Zero,
				Kind:         LineLoss,
			})
		}
	}
	return plan, nil
}

// BuildRefundPlan settles every prediction at its net stake. Used for
// the no-winner degenerate case and for invalidated disputes. The
// platform fee was taken at stake time and is not part of the refund.
func (e *Engine) BuildRefundPlan(predictions []models.Prediction) *Plan {
	return &Plan{
		FullRefund: true,
		Lines:      refundLines(predictions),
	}
}

func refundLines(predictions []models.Prediction) []Line {
	lines := make([]Line, 0, len(predictions))
	for i := range predictions {
		p := &predictions[i]
		lines = append(lines, Line{
			PredictionID: p.ID,
			UserID:       p.UserID,
			Payout:       p.StakeAmount,
			Kind:         LineRefund,
		})
	}
	return lines
}
