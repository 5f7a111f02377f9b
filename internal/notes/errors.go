package notes

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("please fill out both fields")
	ErrEmptyText  = fmt.Errorf("%w: note text is empty", ErrValidation)
	ErrEmptyTag   = fmt.Errorf("%w: note tag is empty", ErrValidation)
)
