package holidays

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/dmitrymomot/holidays/internal"
	"github.com/dmitrymomot/holidays/internal/providers"
)

// registry maps provider codes to their rule-sets. Codes are lowercase ISO
// 3166-1 alpha-2 country codes, with subdivisions as "<country>-<region>".
var registry = map[string]internal.Provider{
	"jp":    providers.Japan{},
	"ie":    providers.Ireland{},
	"us":    providers.USA{},
	"nl":    providers.Netherlands{},
	"de":    providers.Germany{},
	"de-by": providers.Bavaria{},
}

// subdivisionNames overrides display names for codes that are not plain
// ISO 3166-1 regions.
var subdivisionNames = map[string]string{
	"de-by": "Bavaria",
}

// Create builds the holiday collection of the given provider for one year.
// The code is matched case-insensitively against the registered providers;
// unknown codes return ErrProviderNotFound. The year must lie in
// [YearMin, YearMax] and the locale must be a supported tag.
//
// Example:
//
//	c, err := holidays.Create("ie", 2018, "en_IE")
func Create(code string, year int, loc string) (*Collection, error) {
	code = normalizeCode(code)
	p, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProviderNotFound, code)
	}
	return internal.Build(p, year, loc)
}

// CreateByRegionCode builds a collection from an ISO 3166 code such as "JP"
// or "DE-BY". It accepts underscore separators and any casing.
func CreateByRegionCode(regionCode string, year int, loc string) (*Collection, error) {
	return Create(regionCode, year, loc)
}

// ListProviders returns the registered provider codes mapped to their
// English display names. The result is built fresh on every call and safe
// to mutate.
func ListProviders() map[string]string {
	out := make(map[string]string, len(registry))
	for code := range registry {
		out[code] = displayName(code)
	}
	return out
}

// ProviderCodes returns the registered provider codes in sorted order.
func ProviderCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func normalizeCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	return strings.ReplaceAll(code, "_", "-")
}

func displayName(code string) string {
	if name, ok := subdivisionNames[code]; ok {
		return name
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return code
}
