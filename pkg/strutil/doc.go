// Package strutil provides small blank-safe string helpers.
//
// "Blank" throughout this package means empty or consisting entirely of
// Unicode whitespace. The helpers cover the gaps that otherwise get
// re-implemented inline at call sites:
//
//	strutil.IsBlank("  \t ")                  // true
//	strutil.Coalesce("", "  ", "fallback")    // "fallback"
//	strutil.DefaultIfBlank(name, "anonymous") // name, or "anonymous" when blank
//	strutil.Truncate("héllo wörld", 5)        // "héllo" (rune-safe)
//
// All functions are pure and allocation-light; none of them can fail.
package strutil
