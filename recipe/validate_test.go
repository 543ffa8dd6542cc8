package recipe

import (
	"bytes"
	"testing"
)

func TestValidateRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := Validate(data); err != ErrInvalidUTF8 {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateRejectsNUL(t *testing.T) {
	data := append([]byte("elements: []"), 0x00)
	if err := Validate(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateRejectsControlHeavyInput(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), 62), 0x01, 0x02)
	if err := Validate(data); err != ErrBinaryInput {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateAcceptsTextWithTabsAndNewlines(t *testing.T) {
	data := []byte("elements:\n\t- kind: emoji\r\n      value: \"😀\"\n")
	if err := Validate(data); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
