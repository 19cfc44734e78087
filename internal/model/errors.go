package model

import "errors"

// ErrNotFound signals a lookup by key (account, department, transaction)
// that matched nothing. Distinct from an empty result list; the HTTP layer
// translates it to a 404.
var ErrNotFound = errors.New("not found")
