package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDispute_Decide(t *testing.T) {
	deciderID := uuid.New()

	d := Dispute{
		MarketID:    uuid.New(),
		InitiatedBy: uuid.New(),
		Reason:      "the resolution cited the wrong match result",
		Status:      DisputeStatusPending,
	}
	assert.True(t, d.IsPending())

	err := d.Decide(DecisionOverturned, "score sheet confirms the other team won", deciderID)
	assert.NoError(t, err)
	assert.Equal(t, DisputeStatusOverturned, d.Status)
	assert.Equal(t, "score sheet confirms the other team won", d.AdminDecision)
	assert.Equal(t, deciderID, *d.DecidedByID)
	assert.NotNil(t, d.ResolvedAt)
	assert.False(t, d.IsPending())

	// Decisions are terminal.
	err = d.Decide(DecisionUpheld, "second thoughts", deciderID)
	assert.ErrorIs(t, err, ErrDisputeAlreadyDecided)
	assert.Equal(t, DisputeStatusOverturned, d.Status)
}

func TestDispute_DecideRejectsUnknownDecision(t *testing.T) {
	d := Dispute{Status: DisputeStatusPending}
	err := d.Decide(DisputeDecision("maybe"), "", uuid.New())
	assert.ErrorIs(t, err, ErrInvalidDisputeDecision)
	assert.True(t, d.IsPending())
}

func TestValidDecision(t *testing.T) {
	assert.True(t, ValidDecision(DecisionUpheld))
	assert.True(t, ValidDecision(DecisionOverturned))
	assert.True(t, ValidDecision(DecisionInvalidated))
	assert.False(t, ValidDecision(DisputeDecision("pending")))
	assert.False(t, ValidDecision(DisputeDecision("")))
}

func TestDispute_Validate(t *testing.T) {
	valid := Dispute{
		MarketID:    uuid.New(),
		InitiatedBy: uuid.New(),
		Reason:      "outcome contradicts the published announcement",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*Dispute)
		err    error
	}{
		{"Invalid MarketID", func(d *Dispute) { d.MarketID = uuid.Nil }, ErrInvalidMarketID},
		{"Invalid InitiatedBy", func(d *Dispute) { d.InitiatedBy = uuid.Nil }, ErrInvalidUserID},
		{"Short reason", func(d *Dispute) { d.Reason = "too short" }, ErrDisputeReasonTooShort},
		{"Empty reason", func(d *Dispute) { d.Reason = "" }, ErrDisputeReasonTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispute := valid
			tt.modify(&dispute)
			assert.Equal(t, tt.err, dispute.Validate())
		})
	}
}
