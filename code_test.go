package main

import (
	"strings"
	"testing"
)

func TestGenerateRoomCode(t *testing.T) {
	code := GenerateRoomCode()
	if len(code) != codeLength {
		t.Errorf("wrong length expected: %d got %d", codeLength, len(code))
	}
	for _, letter := range strings.Split(code, "") {
		found := false
		for _, allowed := range codeLetters {
			if letter == allowed {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("letter %q is outside the code charset", letter)
		}
	}
}
