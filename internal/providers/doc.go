// Package providers holds the country and subdivision rule-sets that
// populate holiday collections.
//
// Each provider implements internal.Provider: Code returns its registration
// identifier and Populate adds every entry its rules produce for the
// collection's year. Rules shared between countries (Easter-derived days,
// weekday-of-month holidays, weekend substitution) are plain helper functions
// that each rule-set calls explicitly.
package providers
