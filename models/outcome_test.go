package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestOutcome(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		o := Outcome{}
		assert.Equal(t, "outcomes", o.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		o := Outcome{}
		assert.Equal(t, uuid.Nil, o.ID)

		err := o.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, o.ID)

		existingID := uuid.New()
		o2 := Outcome{ID: existingID}
		err = o2.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.Equal(t, existingID, o2.ID)
	})

	t.Run("AddStake", func(t *testing.T) {
		o := Outcome{TotalStaked: decimal.NewFromFloat(100)}

		err := o.AddStake(decimal.NewFromFloat(50))
		assert.NoError(t, err)
		expected := decimal.NewFromFloat(150)
		assert.True(t, expected.Equal(o.TotalStaked))

		err = o.AddStake(decimal.Zero)
		assert.Equal(t, ErrInvalidStakeAmount, err)

		err = o.AddStake(decimal.NewFromFloat(-10))
		assert.Equal(t, ErrInvalidStakeAmount, err)
	})

	t.Run("ShareOf", func(t *testing.T) {
		o := Outcome{TotalStaked: decimal.NewFromFloat(70)}

		share := o.ShareOf(decimal.NewFromFloat(40))
		expected := decimal.NewFromFloat(40).Div(decimal.NewFromFloat(70))
		assert.True(t, expected.Equal(share))

		o.TotalStaked = decimal.Zero
		assert.True(t, decimal.Zero.Equal(o.ShareOf(decimal.NewFromFloat(40))))
	})

	t.Run("Validate", func(t *testing.T) {
		validOutcome := Outcome{
			MarketID:    uuid.New(),
			OutcomeText: "Yes",
			TotalStaked: decimal.NewFromFloat(100),
		}
		assert.NoError(t, validOutcome.Validate())

		tests := []struct {
			name   string
			modify func(*Outcome)
			err    error
		}{
			{"Invalid MarketID", func(o *Outcome) { o.MarketID = uuid.Nil }, ErrInvalidMarketID},
			{"Empty OutcomeText", func(o *Outcome) { o.OutcomeText = "" }, ErrInvalidOutcomeText},
			{"Negative TotalStaked", func(o *Outcome) { o.TotalStaked = decimal.NewFromFloat(-10) }, ErrInvalidStakeAmount},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				outcome := validOutcome
				tt.modify(&outcome)
				assert.Equal(t, tt.err, outcome.Validate())
			})
		}
	})

	t.Run("GetPredictionCount", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		gormDB, err := gorm.Open(postgres.New(postgres.Config{
			Conn: db,
		}), &gorm.Config{})
		assert.NoError(t, err)

		outcomeID := uuid.New()
		o := Outcome{ID: outcomeID}

		rows := sqlmock.NewRows([]string{"count"}).AddRow(5)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "predictions" WHERE outcome_id = \$1`).
			WithArgs(outcomeID).
			WillReturnRows(rows)

		count, err := o.GetPredictionCount(gormDB)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUniqueBackers", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		gormDB, err := gorm.Open(postgres.New(postgres.Config{
			Conn: db,
		}), &gorm.Config{})
		assert.NoError(t, err)

		outcomeID := uuid.New()
		o := Outcome{ID: outcomeID}

		rows := sqlmock.NewRows([]string{"count"}).AddRow(3)

		mock.ExpectQuery(`SELECT COUNT\(DISTINCT\("user_id"\)\) FROM "predictions" WHERE outcome_id = \$1`).
			WithArgs(outcomeID).
			WillReturnRows(rows)

		count, err := o.GetUniqueBackers(gormDB)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
