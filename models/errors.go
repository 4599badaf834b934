package models

import "errors"

var (
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidRole      = errors.New("invalid role")

	ErrInvalidMarketQuestion  = errors.New("invalid market question")
	ErrInvalidMarketStatus    = errors.New("invalid market status")
	ErrInvalidMarketID        = errors.New("invalid market ID")
	ErrInvalidCloseTime       = errors.New("close time must be in the future")
	ErrInvalidOutcomeCount    = errors.New("markets must have between 2 and 5 outcomes")
	ErrInvalidStateTransition = errors.New("invalid market state transition")
	ErrMarketNotLive          = errors.New("market is not accepting predictions")
	ErrMarketClosed           = errors.New("market has closed")
	ErrMarketAlreadyResolved  = errors.New("market is already resolved")

	ErrInvalidOutcomeText = errors.New("invalid outcome text")
	ErrInvalidOutcome     = errors.New("outcome does not belong to this market")

	ErrInvalidStakeAmount  = errors.New("stake amount must be at least 1 point")
	ErrInsufficientBalance = errors.New("insufficient points balance")
	ErrNegativeBalance     = errors.New("points balance cannot be negative")
	ErrAlreadyPaidOut      = errors.New("prediction is already paid out")

	ErrCreatorVote           = errors.New("cannot vote on your own market")
	ErrDuplicateVote         = errors.New("you have already voted on this market")
	ErrInvalidVote           = errors.New("vote must be approve or reject")
	ErrApprovalDeadlinePast  = errors.New("approval deadline has passed")
	ErrApprovalThresholdZero = errors.New("approval vote threshold must be positive")

	ErrDisputeReasonTooShort  = errors.New("dispute reason must be at least 10 characters")
	ErrDisputeWindowClosed    = errors.New("dispute window has closed")
	ErrDuplicateDispute       = errors.New("you have already filed a dispute for this market")
	ErrDisputeAlreadyDecided  = errors.New("dispute has already been decided")
	ErrInvalidDisputeDecision = errors.New("invalid dispute decision")
	ErrMissingNewWinner       = errors.New("overturned disputes require a new winning outcome")

	ErrInvalidFeePercentage            = errors.New("invalid platform fee percentage")
	ErrInvalidStartingBalance          = errors.New("invalid starting balance")
	ErrInvalidDisputeWindow            = errors.New("invalid dispute window")
	ErrInvalidApprovalDeadline         = errors.New("invalid approval deadline")
	ErrInvalidBonusAmount              = errors.New("bonus amount must be greater than zero")
	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrInvalidActivityAction = errors.New("invalid activity action")

	ErrInvalidCategoryName   = errors.New("invalid category name")
	ErrInvalidCategorySlug   = errors.New("category slug must be lowercase letters, digits and hyphens")
	ErrDuplicateCategorySlug = errors.New("a category with this slug already exists")
	ErrCategoryInUse         = errors.New("category still has markets attached")

	ErrInvalidUUID    = errors.New("invalid UUID")
	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
)
