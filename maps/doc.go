// Package maps provides standalone, framework-agnostic helper functions for
// plain Go maps.
//
// # Reading
//
// Lookups with a fallback avoid a separate comma-ok check at call sites:
//
//	port := maps.GetOr(config, "port", 8080)
//	if maps.Has(config, "debug") { ... }
//
// # Reshaping
//
// Every reshaping helper returns a fresh map; inputs are never modified.
// The single documented exception is [Upsert], which writes through to the
// map it is given:
//
//	merged := maps.Merge(defaults, overrides)       // right-hand map wins
//	public := maps.Pick(user, "id", "name")
//	safe   := maps.Omit(user, "password")
//	ages   := maps.MapValues(users, func(u User) int { return u.Age })
//
// # Ordering
//
// Go maps iterate in unspecified order. [Keys] and [Values] inherit that;
// use [SortedKeys] when a deterministic listing is needed:
//
//	for _, k := range maps.SortedKeys(m) {
//	    fmt.Println(k, m[k])
//	}
package maps
