// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/z5labs/outcome/option"
	"github.com/z5labs/outcome/result"
)

type record struct {
	Age      int
	Nickname string
}

func parseAge(s string) result.Result[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return result.Err[int]("'" + s + "' is not a number")
	}
	return result.Ok[string](n)
}

func validateRange(age int) result.Result[int, string] {
	if age < 0 || age > 150 {
		return result.Err[int](strconv.Itoa(age) + " is out of a human age range")
	}
	return result.Ok[string](age)
}

var nicknames = map[int]string{
	42: "the answer",
}

func lookupNickname(age int) option.Option[string] {
	nick, ok := nicknames[age]
	return option.FromOk(nick, ok)
}

func createRecord(age int) result.Result[record, string] {
	nick := lookupNickname(age).UnwrapOr("anonymous")
	return result.Ok[string](record{Age: age, Nickname: nick})
}

func main() {
	inputs := os.Args[1:]
	if len(inputs) == 0 {
		inputs = []string{"42", "abc", "200", "7"}
	}

	for _, in := range inputs {
		checked := result.Bind(result.Bind(parseAge(in), validateRange), createRecord)

		checked.Match(
			func(r record) { fmt.Printf("%q -> age %d (%s)\n", in, r.Age, r.Nickname) },
			func(e string) { fmt.Printf("%q -> rejected: %s\n", in, e) },
		)
	}
}
