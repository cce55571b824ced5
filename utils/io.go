package utils

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/rs/zerolog/log"
)

func OpenFile(path string) (file *os.File) {
	file, err := os.Open(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to open file: " + path)
	}
	return file
}

func CreateFile(path string) (file *os.File) {
	file, err := os.Create(path)
	if err != nil {
		log.Panic().Err(err).Msg("Failed to create file: " + path)
	}
	return file
}

// ToInt parses an ASCII decimal integer with an optional leading sign.
// Returns false on an empty field, a non-digit byte, or a value outside the int64 range.
func ToInt(buf []byte) (n int64, ok bool) {
	neg := false
	if len(buf) > 0 && (buf[0] == '-' || buf[0] == '+') {
		neg = buf[0] == '-'
		buf = buf[1:]
	}
	if len(buf) == 0 {
		return 0, false
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++ // -(MaxInt64+1) is MinInt64.
	}
	var u uint64
	for i := 0; i < len(buf); i++ {
		d := buf[i] - '0'
		if d > 9 {
			return 0, false
		}
		if u > (limit-uint64(d))/10 {
			return 0, false
		}
		u = u*10 + uint64(d)
	}
	if neg {
		return -int64(u), true
	}
	return int64(u), true
}

// var asciiSpace = [256]uint8{'\t': 1, '\n': 1, '\v': 1, '\f': 1, '\r': 1, ' ': 1}
const SPACE_MASK = 1<<9 | 1<<10 | 1<<11 | 1<<12 | 1<<13 | 1<<32

func isByteSpace(b byte) bool {
	return ((SPACE_MASK & (1 << b)) != 0)
}

// FastFields splits byteBuff on ASCII whitespace, appending sub-slices (no copies) to fieldBuff.
func FastFields(fieldBuff [][]byte, byteBuff []byte) [][]byte {
	fieldBuff = fieldBuff[:0]
	i := 0
	// Skip spaces in the front of the input.
	for i < len(byteBuff) && isByteSpace(byteBuff[i]) {
		i++
	}
	fieldStart := i
	for i < len(byteBuff) {
		if !isByteSpace(byteBuff[i]) {
			i++
			continue
		}
		fieldBuff = append(fieldBuff, byteBuff[fieldStart:i])
		i++
		// Skip spaces in between fields.
		for i < len(byteBuff) && isByteSpace(byteBuff[i]) {
			i++
		}
		fieldStart = i
	}
	if fieldStart < len(byteBuff) { // Last field might end at EOF.
		fieldBuff = append(fieldBuff, byteBuff[fieldStart:])
	}
	return fieldBuff
}

type FastFileLines struct {
	Buf   []byte
	Start int // First non-processed byte in buf.
	End   int // End of data in buf.
}

// Advance to the next line. Returns nil once the reader is drained.
func (s *FastFileLines) Scan(file io.Reader) []byte {
	var err error
	for { // Until we have a token.
		if s.End > s.Start { // See if we can get a token with what we already have.
			if i := bytes.IndexByte(s.Buf[s.Start:s.End], '\n'); i >= 0 {
				token := s.Buf[s.Start : s.Start+i]
				s.Start += i + 1
				return token
			}
		}
		// We cannot generate a token with what we are holding.
		if err != nil {
			// We have reached EOF. Return whatever is left.
			if s.End > s.Start {
				i := s.Start
				s.Start = s.End
				return s.Buf[i:s.End]
			}
			return nil
		}

		// Must read more data. Shift data to beginning of buffer if there's lots of empty space.
		if s.Start > 0 && s.Start > len(s.Buf)/2 {
			copy(s.Buf, s.Buf[s.Start:s.End])
			s.End -= s.Start
			s.Start = 0
		}
		// Buffer is full: give up.
		if s.End == len(s.Buf) {
			log.Panic().Msg("token too long")
		}
		var n int
		for loop := 0; ; loop++ {
			n, err = file.Read(s.Buf[s.End:len(s.Buf)])
			s.End += n
			if n > 0 || err != nil {
				break
			}
			if loop > 100 {
				log.Panic().Msg("no progress")
			}
		}
	}
}
