package service

import "errors"

var (
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrInvalidCredentials   = errors.New("incorrect email or password")
	ErrInvalidSummaryLength = errors.New("summary_length must be 'short', 'medium', or 'long'")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrQueryProcessingFailed = errors.New("query processing failed")
)
