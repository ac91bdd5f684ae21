package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aglyzov/go-pds/cowtrie"
	"github.com/aglyzov/go-pds/triestore"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errArguments      = errors.New("wrong number of arguments")
	errValueType      = errors.New("unknown value type")
	errVersion        = errors.New("no such version")
)

// scriptRunner executes trie scripts. Every put or remove that changes the
// store records a new version; reads go to the checked out version.
type scriptRunner struct {
	store    *triestore.Store
	versions []cowtrie.Trie
	checkout int // index into versions, -1 for the head
	out      io.Writer
}

func newScriptRunner(store *triestore.Store, out io.Writer) *scriptRunner {
	return &scriptRunner{
		store:    store,
		versions: []cowtrie.Trie{store.Snapshot()},
		checkout: -1,
		out:      out,
	}
}

func (r *scriptRunner) run(in io.Reader) error {
	return forEachLine(in, r.exec)
}

func (r *scriptRunner) current() cowtrie.Trie {
	if r.checkout < 0 {
		return r.versions[len(r.versions)-1]
	}
	return r.versions[r.checkout]
}

func (r *scriptRunner) record() {
	if head := r.store.Snapshot(); head != r.versions[len(r.versions)-1] {
		r.versions = append(r.versions, head)
	}
}

func (r *scriptRunner) exec(fields []string) error {
	switch cmd := fields[0]; cmd {
	case "put":
		if len(fields) != 4 {
			return fmt.Errorf("%w: put <key> <type> <value>", errArguments)
		}
		key, err := parseKey(fields[1])
		if err != nil {
			return err
		}
		if err := r.put(key, fields[2], fields[3]); err != nil {
			return err
		}
		r.record()

	case "get":
		if len(fields) != 3 {
			return fmt.Errorf("%w: get <key> <type>", errArguments)
		}
		key, err := parseKey(fields[1])
		if err != nil {
			return err
		}
		return r.get(key, fields[2])

	case "remove":
		if len(fields) != 2 {
			return fmt.Errorf("%w: remove <key>", errArguments)
		}
		key, err := parseKey(fields[1])
		if err != nil {
			return err
		}
		r.store.Remove(key)
		r.record()

	case "checkout":
		if len(fields) != 2 {
			return fmt.Errorf("%w: checkout <version|head>", errArguments)
		}
		if fields[1] == "head" {
			r.checkout = -1
			return nil
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 || n >= len(r.versions) {
			return fmt.Errorf("%w: %s", errVersion, fields[1])
		}
		r.checkout = n

	case "version":
		fmt.Fprintln(r.out, len(r.versions))

	case "dump":
		r.current().Dump(r.out)

	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}

	return nil
}

func (r *scriptRunner) put(key, typ, raw string) error {
	switch typ {
	case "u32":
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("cannot parse u32 value: %w", err)
		}
		triestore.Put(r.store, key, uint32(v))
	case "u64":
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse u64 value: %w", err)
		}
		triestore.Put(r.store, key, v)
	case "str":
		v, err := parseKey(raw)
		if err != nil {
			return err
		}
		triestore.Put(r.store, key, v)
	default:
		return fmt.Errorf("%w: %s", errValueType, typ)
	}

	return nil
}

func (r *scriptRunner) get(key, typ string) error {
	var (
		val any
		ok  bool
		cur = r.current()
	)

	switch typ {
	case "u32":
		val, ok = cowtrie.Get[uint32](cur, key)
	case "u64":
		val, ok = cowtrie.Get[uint64](cur, key)
	case "str":
		val, ok = cowtrie.Get[string](cur, key)
	default:
		return fmt.Errorf("%w: %s", errValueType, typ)
	}

	if !ok {
		fmt.Fprintln(r.out, "absent")
		return nil
	}

	fmt.Fprintln(r.out, val)

	return nil
}

// parseKey accepts a bare word or a Go quoted string. Quoting allows empty keys
// and escapes; fields never contain spaces.
func parseKey(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}

	key, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("cannot unquote %s: %w", s, err)
	}

	return key, nil
}

// forEachLine calls fn with the fields of every line that is not blank or
// a comment, annotating errors with the line number.
func forEachLine(in io.Reader, fn func(fields []string) error) error {
	scanner := bufio.NewScanner(in)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := fn(strings.Fields(line)); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	return scanner.Err()
}
