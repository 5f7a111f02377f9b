package repository

import "errors"

var ErrNotFound = errors.New("board not found")
