package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/aglyzov/go-pds/lruk"
)

var errFrameID = errors.New("bad frame id")

// replayRunner feeds an access trace to an LRU-K replacer.
type replayRunner struct {
	replacer *lruk.Replacer
	out      io.Writer
}

func (r *replayRunner) run(in io.Reader) error {
	return forEachLine(in, r.exec)
}

func (r *replayRunner) exec(fields []string) error {
	cmd := fields[0]

	switch cmd {
	case "evict":
		if id, ok := r.replacer.Evict(); ok {
			fmt.Fprintln(r.out, "evicted", id)
		} else {
			fmt.Fprintln(r.out, "none")
		}
		return nil

	case "size":
		fmt.Fprintln(r.out, r.replacer.Size())
		return nil
	}

	if len(fields) != 2 {
		return fmt.Errorf("%w: %s <frame>", errArguments, cmd)
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: %s", errFrameID, fields[1])
	}
	id := lruk.FrameID(n)

	switch cmd {
	case "access":
		return r.replacer.RecordAccess(id)
	case "pin":
		return r.replacer.SetEvictable(id, false)
	case "unpin":
		return r.replacer.SetEvictable(id, true)
	case "remove":
		return r.replacer.Remove(id)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}
