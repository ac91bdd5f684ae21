package lruk

import "errors"

var (
	// ErrInvalidArgument is returned by New for a non-positive frame count or k.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFrame is returned for a frame id outside [0, numFrames).
	ErrInvalidFrame = errors.New("frame id out of range")
	// ErrUnknownFrame is returned by SetEvictable for a frame without recorded accesses.
	ErrUnknownFrame = errors.New("frame is not tracked")
	// ErrNotEvictable is returned by Remove for a pinned frame.
	ErrNotEvictable = errors.New("frame is not evictable")
)
