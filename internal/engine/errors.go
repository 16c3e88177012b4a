package engine

import (
	"errors"

	"medalboard/internal/models"
)

var (
	// ErrDataLoad covers a missing or unreadable file and rows that cannot be
	// decoded into the expected column types.
	ErrDataLoad = errors.New("data load error")
	// ErrDataSchema means the header lacks one or more required columns.
	ErrDataSchema = errors.New("data schema error")
	// ErrInvalidSelection is re-exported so callers of the engine need not
	// import models just to branch on it.
	ErrInvalidSelection = models.ErrInvalidSelection
)
