package game

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
	ErrItemNotPresent = errors.New("item not present in scene")
	ErrUnknownScene   = errors.New("unknown scene")
)
