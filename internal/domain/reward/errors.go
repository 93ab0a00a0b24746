package reward

import "errors"

var (
	ErrRewardNotFound = errors.New("star reward not found")
	ErrZeroStars      = errors.New("stars must not be zero")
)
