// Package day07 solves "No Space Left On Device" by replaying a terminal
// transcript of cd and ls commands.
package day07

import (
	"fmt"
	"path"
	"slices"

	adverrors "github.com/aledsdavies/advent/internal/errors"
	"github.com/aledsdavies/advent/internal/puzzle"
	"github.com/aledsdavies/advent/internal/scan"
)

const number = 7

const (
	diskSize   = 70_000_000
	updateSize = 30_000_000
	smallDir   = 100_000
)

// Day is the calendar entry.
var Day = puzzle.Day{
	Number: number,
	Title:  "No Space Left On Device",
	Part1:  puzzle.Solver(Part1),
	Part2:  puzzle.Solver(Part2),
}

// Filesystem maps each directory's full path to the total size of the files
// beneath it.
type Filesystem struct {
	Dirs  map[string]uint64
	files map[string]bool
}

func newFilesystem() *Filesystem {
	return &Filesystem{
		Dirs:  map[string]uint64{"/": 0},
		files: map[string]bool{},
	}
}

// addFile records a file once, adding its size to every enclosing directory.
func (fs *Filesystem) addFile(dir, name string, size uint64) {
	p := path.Join(dir, name)
	if fs.files[p] {
		return
	}
	fs.files[p] = true
	for d := dir; ; d = path.Dir(d) {
		fs.Dirs[d] += size
		if d == "/" {
			return
		}
	}
}

// Used returns the space taken by everything on disk.
func (fs *Filesystem) Used() uint64 {
	return fs.Dirs["/"]
}

// Parse replays the transcript.
func Parse(input string) (*Filesystem, error) {
	s := scan.New(scan.Normalize(input))
	fs, err := replay(s)
	if err != nil {
		return nil, adverrors.NewParseError(number, err)
	}
	return fs, nil
}

func replay(s *scan.Scanner) (*Filesystem, error) {
	fs := newFilesystem()
	cwd := "/"
	for !s.AtEOF() {
		at := *s
		switch {
		case s.Accept("$ cd "):
			target := s.Line()
			switch target {
			case "/":
				cwd = "/"
			case "..":
				if cwd == "/" {
					return nil, fmt.Errorf("%s: cd .. from the root directory", at.Pos())
				}
				cwd = path.Dir(cwd)
			case "":
				return nil, at.Errorf("directory name")
			default:
				cwd = path.Join(cwd, target)
				if _, ok := fs.Dirs[cwd]; !ok {
					fs.Dirs[cwd] = 0
				}
			}
		case s.Accept("$ ls"):
			if !s.AtEOF() {
				if err := s.Newline(); err != nil {
					return nil, err
				}
			}
		case s.Accept("dir "):
			name := s.Line()
			if name == "" {
				return nil, at.Errorf("directory name")
			}
			if _, ok := fs.Dirs[path.Join(cwd, name)]; !ok {
				fs.Dirs[path.Join(cwd, name)] = 0
			}
		default:
			size, err := s.Uint()
			if err != nil {
				return nil, at.Errorf("command, directory or file entry")
			}
			if err := s.Literal(" "); err != nil {
				return nil, err
			}
			name := s.Line()
			if name == "" {
				return nil, at.Errorf("file name")
			}
			fs.addFile(cwd, name, size)
		}
	}
	return fs, nil
}

// Part1 sums the sizes of every directory holding at most 100000.
func Part1(input string) (uint64, error) {
	fs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, size := range fs.Dirs {
		if size <= smallDir {
			total += size
		}
	}
	return total, nil
}

// Part2 finds the smallest directory whose deletion leaves room for the
// update.
func Part2(input string) (uint64, error) {
	fs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if fs.Used() > diskSize {
		return 0, fmt.Errorf("%d bytes used on a %d byte disk", fs.Used(), diskSize)
	}
	free := diskSize - fs.Used()
	if free >= updateSize {
		return 0, nil
	}
	need := updateSize - free

	sizes := make([]uint64, 0, len(fs.Dirs))
	for _, size := range fs.Dirs {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	i, _ := slices.BinarySearch(sizes, need)
	// The root always qualifies, since it holds everything used.
	return sizes[i], nil
}
