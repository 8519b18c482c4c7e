package locale

import "slices"

// supported is the finite set of locale tags holiday names can be requested
// in. Kept in canonical form; extend it together with the translation data in
// pkg/translations.
var supported = []string{
	"ca", "ca_ES", "ca_ES_VALENCIA",
	"cs", "cs_CZ",
	"cy", "cy_GB",
	"da", "da_DK",
	"de", "de_AT", "de_CH", "de_DE",
	"el", "el_GR",
	"en", "en_AU", "en_CA", "en_GB", "en_IE", "en_NZ", "en_US", "en_ZA",
	"es", "es_ES", "es_MX",
	"fi", "fi_FI",
	"fr", "fr_BE", "fr_CA", "fr_CH", "fr_FR",
	"ga", "ga_IE",
	"hu", "hu_HU",
	"it", "it_CH", "it_IT",
	"ja", "ja_JP",
	"ko", "ko_KR",
	"nb", "nb_NO",
	"nl", "nl_BE", "nl_NL",
	"pl", "pl_PL",
	"pt", "pt_BR", "pt_PT",
	"ru", "ru_RU",
	"sv", "sv_SE",
	"uk", "uk_UA",
	"zh", "zh_CN", "zh_TW",
}

var supportedSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(supported))
	for _, tag := range supported {
		set[tag] = struct{}{}
	}
	return set
}()

// Supported returns the supported locale tags in canonical form.
func Supported() []string {
	return slices.Clone(supported)
}

// IsSupported reports whether the canonical tag is in the supported set.
func IsSupported(tag string) bool {
	_, ok := supportedSet[tag]
	return ok
}
