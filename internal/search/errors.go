package search

import "errors"

var ErrEngineUnhealthy = errors.New("search engine is unhealthy")
