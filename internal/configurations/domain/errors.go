package domain

import "errors"

var ErrNotFound = errors.New("configuration not found")
