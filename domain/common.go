package domain

import (
	"errors"
)

const (
	RoleUser = "user"

	UsernameMaxLength        = 150
	EmailMaxLength           = 254
	IngredientNameMaxLength  = 128
	MeasurementUnitMaxLength = 64
	RecipeNameMaxLength      = 256

	MinCookingTime      = 1
	MinIngredientAmount = 1

	DefaultPageSize = 6
	MaxPageSize     = 100
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "token invalid"
	MessageUserNotAllowed       = "user not allowed"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)
