// Copyright 2023 The Shac Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

// builtinEntries is the built-in documentation, in authored order.
var builtinEntries = []Symbol{
	{Name: "->", Entry: Entry{
		Definition: "A function",
		Details: []string{
			"Takes the arguments (comma-separated) on the left, and the function's body on the right (or indented).\n" +
				"The last expression is returned by default.\n" +
				"You can put a ",
		},
		Syntax: []string{"(Arguments) -> Body"},
		Examples: []string{
			"add = (x, y) -> x + y",
			"upper = (str) -> str.toUpperCase()",
		},
		See: []string{"-->", "!->", "~>"},
	}},
	{Name: "-->", Entry: Entry{
		Definition: "A curried function.",
		Examples: []string{
			"add-curried = (x, y) --> x + y\nadd2 = add-curried(2)\nadd2(4)",
			"call = (o, fn) --> obj[fn]()\ncall('hey')('toUpperCase')",
		},
		See: []string{"->"},
	}},
	{Name: "!->", Entry: Entry{
		Definition: "A hushed function: Like `->`, but doesn't return the last value of the function.",
		See:        []string{"->"},
	}},
	{Name: "~>", Entry: Entry{
		Definition: "A bound function. This kind of function will bind its `this`, to make sure it won't change",
		Examples: []string{
			"class A\n  val: 5\n  sayval: ~> console.log @a\nfn = (new A).sayval\nfn() # without `~>`, this'd print undefined",
		},
		See: []string{"->"},
	}},

	// Combinations of the function modifiers above.
	{Name: "~~>", Entry: Entry{
		Definition: "A function that's curried and bound",
		See:        []string{"-->", "~>"},
	}},
	{Name: "!~~>", Entry: Entry{
		Definition: "A function that's curried, bound, and hushed",
		See:        []string{"-->", "~>", "!->"},
	}},
	{Name: "!~>", Entry: Entry{
		Definition: "A function that's curried and hushed",
		See:        []string{"-->", "!->"},
	}},
	{Name: "!-->", Entry: Entry{
		Definition: "A function that's curried and hushed",
		See:        []string{"-->", "!->"},
	}},

	// Operators.
	{Name: "!", Entry: Entry{
		Definition: "Either prefix:! (`not`) or postfix:! (`()`)",
		Examples: []string{
			"!true # prefix",
			"fn = ->\nfn!() # postfix",
		},
		See: []string{"prefix:!", "postfix:!"},
	}},
	{Name: "prefix:!", Entry: Entry{
		Definition: "Operator version of `not`",
		Examples:   []string{"!true # is false"},
		See:        []string{"not"},
	}},
	{Name: "postfix:!", Entry: Entry{
		Definition: "Calls a function with no argument. Equivalent to empty parentheses (`()`)",
		Examples:   []string{"fn = ->\nfn! # equivalent to fn()"},
	}},
	{Name: "not", Entry: Entry{
		Definition: "`not` inverts a boolean",
		Examples:   []string{"not true # is false"},
	}},
}
