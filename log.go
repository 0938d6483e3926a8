package main

import "github.com/jcorbin/brackish/internal/logio"

// logging routes diagnostics to an explicit sink; a nil sink discards.
type logging struct {
	sink logio.Sink
}

func (log logging) logf(level logio.Level, mess string, args ...interface{}) {
	if log.sink != nil {
		log.sink.Log(level, mess, args...)
	}
}
