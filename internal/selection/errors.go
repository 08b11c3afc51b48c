package selection

import "errors"

var (
	ErrUnknownGroup  = errors.New("unknown customization group")
	ErrUnknownOption = errors.New("unknown customization option")
	ErrSingleChoice  = errors.New("group accepts a single choice")
)
