package logic

import (
	"errors"
	"fmt"
	"timeline_cache/dto"
	"timeline_cache/shared"
)

var (
	ErrConfigMissing     = shared.ErrConfigMissing
	ErrFetchFailed       = errors.New("fetch failed")
	ErrAccountNotFound   = errors.New("account not found")
	ErrMalformedPayload  = dto.ErrMalformedPayload
	ErrMalformedEntity   = errors.New("malformed entity")
	ErrOverlappingEntity = fmt.Errorf("%w: overlapping spans", ErrMalformedEntity)
	ErrStoreFailure      = errors.New("store failure")
)
