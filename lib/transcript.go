package lib

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transcript appends every accepted input to a file. A nil *Transcript is
// valid and records nothing.
type Transcript struct {
	sync.Mutex
	outfile   *os.File
	sessionID string
}

func NewTranscript(filename string) (result *Transcript, err error) {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return
	}
	result = &Transcript{
		outfile:   outfile,
		sessionID: uuid.NewString(),
	}
	_, err = fmt.Fprintf(outfile, "## session %s started %s\n", result.sessionID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		outfile.Close()
		return nil, err
	}
	return result, nil
}

// SessionID identifies this transcript's section of the file.
func (t *Transcript) SessionID() string {
	if t == nil {
		return ""
	}
	return t.sessionID
}

func (t *Transcript) Close() error {
	if t == nil {
		return nil
	}
	return t.outfile.Close()
}

// Record writes one input. Each line of a multi-line input gets its own
// "> " marker; continuation lines use "| " so blocks stay distinguishable.
func (t *Transcript) Record(input string) (err error) {
	if t == nil {
		return nil
	}
	var buf strings.Builder
	for i, line := range strings.Split(input, "\n") {
		if i == 0 {
			buf.WriteString("> ")
		} else {
			buf.WriteString("| ")
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	t.Lock()
	defer t.Unlock()
	_, err = t.outfile.WriteString(buf.String())
	return
}
