package slices

import "github.com/pkg/errors"

var ErrInvalidArgument = errors.New("invalid argument")
