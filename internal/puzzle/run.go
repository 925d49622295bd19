package puzzle

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	adverrors "github.com/aledsdavies/advent/internal/errors"
)

// PartResult is the answer to one part.
type PartResult struct {
	Part    int
	Answer  any
	Elapsed time.Duration
}

// Result holds both answers for a day.
type Result struct {
	Day   Day
	Parts []PartResult
}

// Solve runs both parts of d on input. The first failing part aborts the run.
// Parse errors are returned as they are; anything else is reported as a
// failure of that part.
func Solve(d Day, input string, logger *zap.Logger) (Result, error) {
	res := Result{Day: d}
	for i, fn := range []PartFunc{d.Part1, d.Part2} {
		part := i + 1
		start := time.Now()
		answer, err := fn(input)
		elapsed := time.Since(start)
		if err != nil {
			logger.Debug("part failed",
				zap.String("day", d.Name()),
				zap.Int("part", part),
				zap.Error(err))
			if adverrors.IsErrorType(err, adverrors.ErrFileParse) {
				return Result{}, err
			}
			return Result{}, adverrors.NewSolveError(d.Number, part, err)
		}
		logger.Debug("part solved",
			zap.String("day", d.Name()),
			zap.Int("part", part),
			zap.Duration("elapsed", elapsed))
		res.Parts = append(res.Parts, PartResult{Part: part, Answer: answer, Elapsed: elapsed})
	}
	return res, nil
}

// Write prints the result as "Part N: answer" lines. Multi-line answers start
// on the line after the label.
func (r Result) Write(w io.Writer, header bool) error {
	if header {
		if _, err := fmt.Fprintf(w, "Day %d: %s\n", r.Day.Number, r.Day.Title); err != nil {
			return err
		}
	}
	for _, p := range r.Parts {
		text := fmt.Sprint(p.Answer)
		var err error
		if strings.Contains(text, "\n") {
			_, err = fmt.Fprintf(w, "Part %d:\n%s", p.Part, text)
			if err == nil && !strings.HasSuffix(text, "\n") {
				_, err = io.WriteString(w, "\n")
			}
		} else {
			_, err = fmt.Fprintf(w, "Part %d: %s\n", p.Part, text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
