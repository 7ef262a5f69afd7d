// Package shell implements a line-oriented session to drive a transactional
// store interactively.
//
// The session reads one command per line and writes the results to its output
// stream. The grammar is deliberately small:
//
//	SET <key> <value>   write the key, value is the remainder of the line
//	GET <key>           print the value, or (none) if the key is not set
//	DEL <key>           delete the key
//	BEGIN               open a nested transaction
//	COMMIT              fold the innermost transaction into the outer scope
//	ROLLBACK            discard the innermost transaction
//	DEPTH               print the transaction nesting depth
//	HELP                print the list of commands
//	EXIT                close the session
//
// Blank lines and lines starting with # are skipped. An unknown command is
// reported on the output stream and the session carries on.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/stratakv/strata"
	"github.com/stratakv/strata/store"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

const help = `SET <key> <value>
GET <key>
DEL <key>
BEGIN
COMMIT
ROLLBACK
DEPTH
HELP
EXIT`

// Session drives a transactional store from a stream of commands. It writes
// the results to the output stream and keeps operational events to its own
// logger.
type Session struct {
	store  store.Transactional[string]
	logger zerolog.Logger
	in     io.Reader
	out    io.Writer
}

// NewSession creates a new session around the store, reading the commands
// from in and writing the results to out.
func NewSession(txstore store.Transactional[string], in io.Reader, out io.Writer) *Session {
	return &Session{
		store:  txstore,
		logger: strata.Logger.With().Stringer("session", xid.New()).Logger(),
		in:     in,
		out:    out,
	}
}

// Run reads the input line by line and executes each command until the input
// is exhausted, or an EXIT command is read. It only fails when the input
// stream breaks, never because of a command.
func (s *Session) Run() error {
	s.logger.Info().Msg("session started")

	scanner := bufio.NewScanner(s.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if s.execute(line) {
			break
		}
	}

	err := scanner.Err()
	if err != nil {
		return xerrors.Errorf("failed to read input: %v", err)
	}

	s.logger.Info().Int("depth", s.store.Depth()).Msg("session closed")

	return nil
}

// execute runs a single command and returns true when the session must stop.
func (s *Session) execute(line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToUpper(fields[0])

	s.logger.Debug().Str("command", cmd).Msg("executing")

	switch cmd {
	case "SET":
		args := strings.SplitN(line, " ", 3)
		if len(args) < 3 {
			fmt.Fprintln(s.out, "usage: SET <key> <value>")
			return false
		}

		s.store.Set(args[1], args[2])
	case "GET":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: GET <key>")
			return false
		}

		value, found := s.store.Get(fields[1])
		if !found {
			fmt.Fprintln(s.out, "(none)")
		} else {
			fmt.Fprintln(s.out, value)
		}
	case "DEL":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: DEL <key>")
			return false
		}

		s.store.Delete(fields[1])
	case "BEGIN":
		s.store.Begin()
	case "COMMIT":
		if !s.store.Commit() {
			fmt.Fprintln(s.out, "no transaction in progress")
		}
	case "ROLLBACK":
		if !s.store.Rollback() {
			fmt.Fprintln(s.out, "no transaction in progress")
		}
	case "DEPTH":
		fmt.Fprintln(s.out, s.store.Depth())
	case "HELP":
		fmt.Fprintln(s.out, help)
	case "EXIT", "QUIT":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command '%s'\n", fields[0])
	}

	return false
}

// Seed populates the store with the associations of a yaml document mapping
// keys to string values. It writes through the regular store interface, so
// seeding inside an active transaction stays isolated like any other write.
func Seed(in io.Reader, dst store.Writable[string]) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return xerrors.Errorf("failed to read seed: %v", err)
	}

	values := map[string]string{}

	err = yaml.Unmarshal(data, &values)
	if err != nil {
		return xerrors.Errorf("failed to decode seed: %v", err)
	}

	for key, value := range values {
		dst.Set(key, value)
	}

	return nil
}
