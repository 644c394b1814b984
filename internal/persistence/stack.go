package persistence

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"

	"github.com/colobot/colobot-sub009/internal/engine"
)

// StackFormat is the layout version of the execution state stream.
const StackFormat uint32 = 1

// MaxStackRecord bounds the size of one saved program state.
const MaxStackRecord = 16 << 20

var ErrStackFormat = errors.New("unsupported program state format")

// StackHolder is an object whose running program can be suspended.
type StackHolder interface {
	ID() int
	StackState() []byte
	RestoreStack(state []byte) error
}

type stackHeader struct {
	Format  uint32
	Runtime uint32
}

type recordHeader struct {
	ID      int32
	Runtime uint32
	Length  uint32
}

// WriteStacks streams the execution state of every object that has one.
// Each record carries its own checksum so one damaged record does not cost
// the others.
func WriteStacks(w io.Writer, runtime uint32, objects []engine.Object) (int, error) {
	if err := binary.Write(w, binary.LittleEndian, stackHeader{StackFormat, runtime}); err != nil {
		return 0, fmt.Errorf("failed to write program state header: %w", err)
	}

	written := 0
	for _, obj := range objects {
		holder, ok := obj.(StackHolder)
		if !ok {
			continue
		}
		state := holder.StackState()
		if len(state) == 0 {
			continue
		}

		rec := recordHeader{ID: int32(holder.ID()), Runtime: runtime, Length: uint32(len(state))}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return written, fmt.Errorf("failed to write program state of %d: %w", holder.ID(), err)
		}
		if _, err := w.Write(state); err != nil {
			return written, fmt.Errorf("failed to write program state of %d: %w", holder.ID(), err)
		}
		if err := binary.Write(w, binary.LittleEndian, xxh3.Hash(state)); err != nil {
			return written, fmt.Errorf("failed to write program state of %d: %w", holder.ID(), err)
		}
		written++
	}
	return written, nil
}

// ReadStacks resumes the programs saved by WriteStacks. A stream of another
// format is rejected whole; a record that fails its checksum or was made by
// another runtime is skipped. A truncated stream, or a record longer than
// MaxStackRecord, ends the restore with a warning.
func ReadStacks(r io.Reader, runtime uint32, objects []engine.Object, log *logrus.Entry) (int, error) {
	var header stackHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return 0, fmt.Errorf("failed to read program state header: %w", err)
	}
	if header.Format != StackFormat {
		return 0, fmt.Errorf("%w: %d", ErrStackFormat, header.Format)
	}

	holders := make(map[int]StackHolder)
	for _, obj := range objects {
		if h, ok := obj.(StackHolder); ok {
			holders[h.ID()] = h
		}
	}

	restored := 0
	for {
		var rec recordHeader
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Warn("Program state stream truncated")
			}
			return restored, nil
		}

		if rec.Length > MaxStackRecord {
			log.WithFields(logrus.Fields{"id": rec.ID, "length": rec.Length}).Warn("Program state record too large, stream truncated")
			return restored, nil
		}

		// The buffer only grows as bytes arrive, whatever Length claims.
		var buf bytes.Buffer
		if _, err := io.CopyN(&buf, r, int64(rec.Length)); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			log.WithError(err).WithField("id", rec.ID).Warn("Program state stream truncated")
			return restored, nil
		}
		state := buf.Bytes()

		var sum uint64
		if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
			log.WithError(err).WithField("id", rec.ID).Warn("Program state stream truncated")
			return restored, nil
		}

		entry := log.WithField("id", rec.ID)
		switch {
		case sum != xxh3.Hash(state):
			entry.Warn("Program state checksum mismatch, skipped")
			continue
		case rec.Runtime != runtime:
			entry.WithField("runtime", rec.Runtime).Warn("Program state from another runtime, skipped")
			continue
		}

		holder, ok := holders[int(rec.ID)]
		if !ok {
			entry.Warn("Program state for unknown object, skipped")
			continue
		}
		if err := holder.RestoreStack(state); err != nil {
			entry.WithError(err).Warn("Program state rejected")
			continue
		}
		restored++
	}
}
