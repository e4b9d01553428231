package config

import "strings"

// KeyNames lists the key names that can be bound in the keys section.
var KeyNames = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"UP", "DOWN", "LEFT", "RIGHT", "SPACE", "ENTER",
}

// KnownKey reports whether name is one of KeyNames, ignoring case.
func KnownKey(name string) bool {
	name = strings.ToUpper(name)
	for _, k := range KeyNames {
		if k == name {
			return true
		}
	}
	return false
}
