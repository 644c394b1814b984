package persistence

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/colobot/colobot-sub009/internal/data"
	"github.com/colobot/colobot-sub009/internal/engine"
	"github.com/colobot/colobot-sub009/internal/sim"
)

func stackObjects() []engine.Object {
	a := sim.NewObject(1, data.ObjectMobileWA, 0, mgl32.Vec3{})
	a.SetStackState([]byte("frame-a"))
	b := sim.NewObject(2, data.ObjectMobileWC, 0, mgl32.Vec3{})
	b.SetStackState([]byte("frame-b"))
	idle := sim.NewObject(3, data.ObjectStone, 0, mgl32.Vec3{})
	return []engine.Object{a, b, idle}
}

func freshObjects() ([]engine.Object, *sim.Object, *sim.Object) {
	a := sim.NewObject(1, data.ObjectMobileWA, 0, mgl32.Vec3{})
	b := sim.NewObject(2, data.ObjectMobileWC, 0, mgl32.Vec3{})
	return []engine.Object{a, b}, a, b
}

func nullLog() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}

func TestStackRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteStacks(&buf, 7, stackObjects())
	if err != nil {
		t.Fatalf("failed to write stacks: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 records written, got %d", n)
	}

	objs, a, b := freshObjects()
	restored, err := ReadStacks(&buf, 7, objs, nullLog())
	if err != nil {
		t.Fatalf("failed to read stacks: %v", err)
	}
	if restored != 2 {
		t.Fatalf("expected 2 restored, got %d", restored)
	}
	if string(a.StackState()) != "frame-a" || string(b.StackState()) != "frame-b" {
		t.Errorf("unexpected states %q %q", a.StackState(), b.StackState())
	}
}

func TestStackFormatMismatchAbortsRestore(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, stackHeader{Format: StackFormat + 1, Runtime: 7})

	objs, _, _ := freshObjects()
	if _, err := ReadStacks(&buf, 7, objs, nullLog()); err == nil {
		t.Fatal("expected format error")
	}
}

func TestStackCorruptRecordIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteStacks(&buf, 7, stackObjects()); err != nil {
		t.Fatalf("failed to write stacks: %v", err)
	}

	// Flip one payload byte of the first record.
	raw := buf.Bytes()
	headerSize := binary.Size(stackHeader{}) + binary.Size(recordHeader{})
	raw[headerSize] ^= 0xff

	objs, a, b := freshObjects()
	logger, hook := test.NewNullLogger()
	restored, err := ReadStacks(bytes.NewReader(raw), 7, objs, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != 1 {
		t.Fatalf("expected 1 restored, got %d", restored)
	}
	if a.StackState() != nil {
		t.Errorf("corrupt record should not be restored")
	}
	if string(b.StackState()) != "frame-b" {
		t.Errorf("second record lost: %q", b.StackState())
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("expected a warning for the corrupt record")
	}
}

func TestStackOtherRuntimeIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteStacks(&buf, 6, stackObjects()); err != nil {
		t.Fatalf("failed to write stacks: %v", err)
	}

	objs, a, _ := freshObjects()
	restored, err := ReadStacks(&buf, 7, objs, nullLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != 0 || a.StackState() != nil {
		t.Errorf("states from another runtime must be skipped")
	}
}

func TestStackTruncatedStreamStops(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteStacks(&buf, 7, stackObjects()); err != nil {
		t.Fatalf("failed to write stacks: %v", err)
	}
	raw := buf.Bytes()[:buf.Len()-3]

	objs, a, b := freshObjects()
	restored, err := ReadStacks(bytes.NewReader(raw), 7, objs, nullLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != 1 || a.StackState() == nil || b.StackState() != nil {
		t.Errorf("expected only the complete record to be restored, got %d", restored)
	}
}

func TestStackOversizedRecordStops(t *testing.T) {
	var buf bytes.Buffer
	if _, err := WriteStacks(&buf, 7, stackObjects()[:1]); err != nil {
		t.Fatalf("failed to write stacks: %v", err)
	}
	binary.Write(&buf, binary.LittleEndian, recordHeader{ID: 2, Runtime: 7, Length: 0xFFFFFFF0})
	buf.WriteString("short")

	logger, hook := test.NewNullLogger()
	objs, a, b := freshObjects()
	restored, err := ReadStacks(&buf, 7, objs, logrus.NewEntry(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != 1 || a.StackState() == nil || b.StackState() != nil {
		t.Errorf("expected only the first record to be restored, got %d", restored)
	}
	last := hook.LastEntry()
	if last == nil || last.Level != logrus.WarnLevel || last.Data["length"] != uint32(0xFFFFFFF0) {
		t.Errorf("expected a warning about the oversized record, got %v", last)
	}
}

func TestStackShortRecordStops(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, stackHeader{StackFormat, 7})
	binary.Write(&buf, binary.LittleEndian, recordHeader{ID: 1, Runtime: 7, Length: MaxStackRecord})
	buf.WriteString("frame")

	objs, a, _ := freshObjects()
	restored, err := ReadStacks(&buf, 7, objs, nullLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored != 0 || a.StackState() != nil {
		t.Errorf("a record cut short must not be restored, got %d", restored)
	}
}
