// Package yearcache caches rendered holiday year payloads.
//
// Computing a year is cheap but rendering and localizing it for every
// request is wasteful, so the HTTP layer caches the serialized payload per
// (provider, year, locale) key. Two stores are provided: Memory for single
// process deployments and Redis for shared ones. Loader adds stampede
// protection on top of either store.
//
//	store := yearcache.NewMemory()
//	defer store.Close()
//
//	loader := yearcache.NewLoader(store)
//	payload, err := loader.Load(ctx, yearcache.Key{Provider: "jp", Year: 2015, Locale: "ja_JP"},
//	    func(ctx context.Context) ([]byte, time.Duration, error) {
//	        return renderYear(ctx) // computed once per key, even under load
//	    })
package yearcache
