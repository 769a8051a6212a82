package ui

import "sync/atomic"

type Stats struct {
	TotalImages   atomic.Int64
	TotalBytes    atomic.Int64
	TotalChapters atomic.Int64
	Skipped       atomic.Int64
	Failed        atomic.Int64
}
