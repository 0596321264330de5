package memdom

import "errors"

// ErrNotSettled is returned if observer deliveries do not come to rest.
var ErrNotSettled = errors.New("observers did not settle")

// ErrNotMemdom is reported when an element of another dom implementation is
// handed to a memdom element.
var ErrNotMemdom = errors.New("element does not belong to memdom")
