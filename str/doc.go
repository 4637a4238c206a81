// Package str provides standalone helper functions for plain Go strings:
// casing, validation, truncation, slugs, and random identifiers.
//
// All functions are rune-safe where it matters (Reverse, Truncate, Capitalize)
// and never modify their input; strings are immutable in Go, so every helper
// returns a new value.
//
// # Casing
//
//	str.Capitalize("hELLO")       // "Hello"
//	str.Camel("user_name")        // "userName"
//	str.Pascal("user_name")       // "UserName"
//	str.Snake("userName")         // "user_name"
//	str.Kebab("userName")         // "user-name"
//
// Case conversion splits on whitespace, underscores, hyphens and dots, and
// additionally detects camel-case word boundaries, so mixed inputs like
// "HTTPServer-v2" convert cleanly.
//
// # Validation
//
// IsEmail and IsURL use fixed regular expressions chosen for everyday
// input checking. They are best-effort and deliberately not RFC-complete;
// use a dedicated validation library when compliance matters.
//
// # Identifiers
//
//	str.Random(16)  // "d0yUrPzCkWggSyaN"
//	str.UUID()      // "0b79a9a1-9f14-47fc-a5a4-..."
//	str.ULID()      // "01J9KQ3VJ9Z2M4X0D8YABCDEFG"
//	str.Slug("Héllo, Wörld!")  // "hello-world"
package str
