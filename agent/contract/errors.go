package contract

import "errors"

var (
	ErrCatalogUnavailable = errors.New("restaurant catalog unavailable")
	ErrStorageUnavailable = errors.New("reservation storage unavailable")
	ErrValidation         = errors.New("validation failed")
)
