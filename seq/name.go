package seq

import (
	"strconv"
	"strings"
)

// NameMustBeValid panics if the name does not follow the naming convention.
// A name is a series of dot-separated tokens. Each token must be non-empty,
// start with a capital letter, and must not contain underscores, dashes, or
// quotes. Elements in a series use square-bracket index notation, as in
// "Host.Seq[3]".
func NameMustBeValid(name string) {
	defer func() {
		if r := recover(); r != nil {
			panic("name " + name + " is not valid: " + r.(string))
		}
	}()

	for _, token := range strings.Split(name, ".") {
		tokenMustBeValid(token)
	}
}

func tokenMustBeValid(token string) {
	bracketsMustMatch(token)

	elem := token
	if i := strings.Index(token, "["); i >= 0 {
		elem = token[:i]
		for _, index := range strings.Split(token[i+1:len(token)-1], "][") {
			if _, err := strconv.Atoi(index); err != nil {
				panic("index must be an integer")
			}
		}
	}

	if elem == "" {
		panic("name element must not be empty")
	}

	for _, c := range []string{"_", "\"", "'", "-"} {
		if strings.Contains(elem, c) {
			panic("name element must not contain " + c)
		}
	}

	if elem[0] < 'A' || elem[0] > 'Z' {
		panic("name element must start with a capital letter")
	}
}

func bracketsMustMatch(token string) {
	open := 0
	for _, c := range token {
		switch c {
		case '[':
			open++
		case ']':
			open--
			if open < 0 {
				panic("brackets must match")
			}
		}
	}

	if open != 0 {
		panic("brackets must match")
	}
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name, and
// an index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
