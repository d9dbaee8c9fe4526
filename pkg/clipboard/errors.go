package clipboard

import "errors"

var (
	ErrNoClipboard = errors.New("clipboard: no clipboard tool found")
	ErrCopyFailed  = errors.New("clipboard: copy failed")
)
