package vtpool_test

import (
	"sync"

	"github.com/open-agri/go-vtpool/vtpool"
)

// poolBuilder assembles binary object pool fixtures.
type poolBuilder struct {
	buf []byte
}

func (b *poolBuilder) u8(v uint8) *poolBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *poolBuilder) u16(v uint16) *poolBuilder {
	b.buf = append(b.buf, byte(v), byte(v>>8))
	return b
}

func (b *poolBuilder) i16(v int16) *poolBuilder {
	return b.u16(uint16(v))
}

func (b *poolBuilder) raw(s string) *poolBuilder {
	b.buf = append(b.buf, s...)
	return b
}

func (b *poolBuilder) bytes() []byte {
	return b.buf
}

// child appends one position-bearing child entry.
func (b *poolBuilder) child(id uint16, x, y int16) *poolBuilder {
	return b.u16(id).i16(x).i16(y)
}

// workingSetHeader appends the record header and fixed fields of a working
// set, up to and including the three count bytes.
func (b *poolBuilder) workingSetHeader(id uint16, bg, selectable uint8, activeMask uint16, numChildren, numMacros, numLanguages uint8) *poolBuilder {
	return b.u16(id).u8(uint8(vtpool.TypeWorkingSet)).
		u8(bg).u8(selectable).u16(activeMask).
		u8(numChildren).u8(numMacros).u8(numLanguages)
}

// minimalWorkingSet returns a complete working set record with no children,
// macros or languages.
func minimalWorkingSet(id uint16) []byte {
	b := &poolBuilder{}
	return b.workingSetHeader(id, 0x01, 1, 0x1000, 0, 0, 0).bytes()
}

// captureEmitter records emitted diagnostics for assertions.
type captureEmitter struct {
	mu   sync.Mutex
	msgs []capturedDiag
}

type capturedDiag struct {
	sev vtpool.Severity
	msg string
}

func (e *captureEmitter) Emit(sev vtpool.Severity, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.msgs = append(e.msgs, capturedDiag{sev: sev, msg: msg})
}

func (e *captureEmitter) bySeverity(sev vtpool.Severity) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []string
	for _, d := range e.msgs {
		if d.sev == sev {
			out = append(out, d.msg)
		}
	}
	return out
}
