package family

import "errors"

var (
	ErrFamilyNotFound = errors.New("family not found")
	ErrMemberNotFound = errors.New("member not found")
)
