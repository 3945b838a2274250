package exdir

import "errors"

// Common errors
var (
	ErrExists        = errors.New("object already exists")
	ErrNotFound      = errors.New("object not found")
	ErrNotFile       = errors.New("object is not a file")
	ErrNotGroup      = errors.New("object is not a group")
	ErrNotDataset    = errors.New("object is not a dataset")
	ErrNotRaw        = errors.New("object is not a raw")
	ErrInvalidObject = errors.New("invalid exdir object")
	ErrInvalidName   = errors.New("invalid object name")
)
