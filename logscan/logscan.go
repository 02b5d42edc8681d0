// Package logscan scans a transaction's log lines for `Program data: `
// markers, decodes the base64 payload, and dispatches the leading 8-byte
// discriminator through a discriminator.Registry.
//
// It also tracks the cross-program-invocation stack implied by Solana's
// `Program <id> invoke [<depth>]` / `Program <id> success` log lines, so
// callers can attribute a decoded program-data event to the program that
// was executing when it was logged. Scan reports that site in each Result;
// the account filler does not read it.
package logscan

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/withobsrvr/solana-dex-parser/clock"
	"github.com/withobsrvr/solana-dex-parser/discriminator"
	"github.com/withobsrvr/solana-dex-parser/event"
)

const programDataMarker = "Program data: "

// InvocationSite records which program was active, and at what CPI depth,
// when a given program-data log line was emitted.
type InvocationSite struct {
	ProgramID solana.PublicKey
	Depth     int
}

// InvocationStack tracks the currently-active program invocation chain
// while scanning a transaction's log lines in order.
type InvocationStack struct {
	stack []InvocationSite
}

// Observe updates the stack in response to one log line, returning the
// currently active invocation (top of stack) after processing it.
func (s *InvocationStack) Observe(line string) (InvocationSite, bool) {
	switch {
	case strings.HasPrefix(line, "Program ") && strings.Contains(line, " invoke ["):
		idStr := strings.TrimPrefix(line, "Program ")
		idStr = idStr[:strings.Index(idStr, " invoke [")]
		depthStr := line[strings.LastIndex(line, "[")+1 : strings.LastIndex(line, "]")]
		depth, _ := strconv.Atoi(depthStr)
		pk, err := solana.PublicKeyFromBase58(idStr)
		if err != nil {
			break
		}
		s.stack = append(s.stack, InvocationSite{ProgramID: pk, Depth: depth})
	case strings.HasPrefix(line, "Program ") && (strings.HasSuffix(line, " success") || strings.HasSuffix(line, " failed")):
		if len(s.stack) > 0 {
			s.stack = s.stack[:len(s.stack)-1]
		}
	}
	if len(s.stack) == 0 {
		return InvocationSite{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// ExtractProgramData extracts and base64-decodes the payload of a
// `Program data: ` log line, or returns ok=false if the marker isn't
// present or the payload doesn't decode.
func ExtractProgramData(line string) ([]byte, bool) {
	idx := strings.Index(line, programDataMarker)
	if idx < 0 {
		return nil, false
	}
	encoded := strings.TrimSpace(line[idx+len(programDataMarker):])
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// Result is one decoded event plus the invocation site active when its log
// line was emitted.
type Result struct {
	Event     *event.Event
	Invocation InvocationSite
}

// Scan walks a transaction's log lines in order, decoding every
// `Program data: ` line whose discriminator matches a registered outer
// decoder. Malformed payloads and unmatched discriminators are silently
// skipped; the scan never aborts on a single bad line.
func Scan(lines []string, reg *discriminator.Registry, meta event.Metadata) []Result {
	var results []Result
	var invStack InvocationStack

	for _, line := range lines {
		site, _ := invStack.Observe(line)

		payload, ok := ExtractProgramData(line)
		if !ok || len(payload) < 8 {
			continue
		}

		var disc [8]byte
		copy(disc[:], payload[:8])

		entry, ok := reg.LookupOuter(disc)
		if !ok {
			continue
		}

		m := meta
		m.IngestTimeUs = clock.NowMicros()
		ev, ok := entry.Decode(payload[8:], m)
		if !ok {
			continue
		}
		results = append(results, Result{Event: ev, Invocation: site})
	}

	return results
}
