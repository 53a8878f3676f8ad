package worklogtype

import "errors"

var (
	ErrWorklogTypeNotFound = errors.New("worklog type not found")
)
