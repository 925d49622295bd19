// Package calendar lists every solved day.
package calendar

import (
	"github.com/aledsdavies/advent/internal/day01"
	"github.com/aledsdavies/advent/internal/day02"
	"github.com/aledsdavies/advent/internal/day03"
	"github.com/aledsdavies/advent/internal/day04"
	"github.com/aledsdavies/advent/internal/day05"
	"github.com/aledsdavies/advent/internal/day06"
	"github.com/aledsdavies/advent/internal/day07"
	"github.com/aledsdavies/advent/internal/day08"
	"github.com/aledsdavies/advent/internal/day09"
	"github.com/aledsdavies/advent/internal/day10"
	"github.com/aledsdavies/advent/internal/day11"
	"github.com/aledsdavies/advent/internal/day12"
	"github.com/aledsdavies/advent/internal/day13"
	"github.com/aledsdavies/advent/internal/puzzle"
)

// Days returns the calendar entries in day order.
func Days() []puzzle.Day {
	return []puzzle.Day{
		day01.Day,
		day02.Day,
		day03.Day,
		day04.Day,
		day05.Day,
		day06.Day,
		day07.Day,
		day08.Day,
		day09.Day,
		day10.Day,
		day11.Day,
		day12.Day,
		day13.Day,
	}
}

// Registry returns a registry of every day.
func Registry() *puzzle.Registry {
	r, err := puzzle.NewRegistry(Days()...)
	if err != nil {
		// Day numbers are fixed above.
		panic(err)
	}
	return r
}
