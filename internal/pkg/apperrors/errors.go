package apperrors

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrReferenceNotFound = errors.New("referenced resource not found")
	ErrMalformedQuery    = errors.New("malformed query parameters")
	ErrGeocodeFailure    = errors.New("address could not be geocoded")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUpload            = errors.New("media upload failed")
	ErrDelete            = errors.New("media delete failed")
	ErrDuplicateEntity   = errors.New("entity already exists")
)
