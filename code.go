package main

import (
	"math/rand"
	"strings"
)

var codeLetters = strings.Split("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")

const codeLength = 6

func GenerateRoomCode() string {
	code := ""
	for i := 0; i < codeLength; i++ {
		index := rand.Intn(len(codeLetters))
		code += codeLetters[index]
	}
	return code
}
