// Package locale parses holiday locale tags and builds their fallback chains.
//
// A tag has the canonical form "language[_REGION[_VARIANT]]" (for example
// "en", "de_DE", "ca_ES_VALENCIA"). [Parse] accepts both "_" and "-"
// separators, normalizes casing, and rejects tags whose subtags are not
// registered BCP 47 subtags or whose canonical form is not in the finite
// supported set.
//
// [Tag.FallbackChain] produces the probe order used during name resolution:
// the most specific form first, then progressively less specific forms down
// to the bare language. The chain is structural only; no locale database is
// consulted.
//
//	locale.Tag("de_DE_BAVARIAN").FallbackChain()
//	// [de_DE_BAVARIAN, de_DE, de]
//
// [Default] ("en_US") is the locale probed after an entity's own chain, and
// [Key] is the sentinel that resolves a name to the holiday's raw key.
package locale
