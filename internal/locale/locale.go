package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ReferenceLocale is the locale display names are rendered in.
var ReferenceLocale = language.AmericanEnglish

var undBase, _, _ = language.Und.Raw()

// scriptLanguages maps language-script pairs that the CLDR tables fold into
// a legacy macrolanguage name (sr-Latn-RS is named "Serbo-Croatian (Serbia)")
// to the language they are named after.
var scriptLanguages = map[string]string{
	"sr-Latn": "sr",
}

// Resolver names BCP 47 identifiers in a fixed reference locale using the
// CLDR tables bundled with golang.org/x/text.
type Resolver struct {
	namer   display.Namer
	scripts display.Namer
	regions display.Namer
}

func NewResolver(ref language.Tag) *Resolver {
	return &Resolver{
		namer:   display.Tags(ref),
		scripts: display.Scripts(ref),
		regions: display.Regions(ref),
	}
}

// DisplayName returns the name of identifier. Identifiers that do not parse,
// that contain well-formed but unknown subtags, or whose language is
// undetermined (und, root, private use) have no name.
func (r *Resolver) DisplayName(identifier string) (string, bool) {
	if identifier == "" {
		return "", false
	}
	tag, err := language.Parse(identifier)
	if err != nil {
		return "", false
	}
	base, script, region := tag.Raw()
	if base == undBase {
		return "", false
	}
	if lang, ok := scriptLanguages[base.String()+"-"+script.String()]; ok {
		return r.qualified(language.Make(lang), script, region)
	}
	name := r.namer.Name(tag)
	if name == "" {
		return "", false
	}
	return name, true
}

// qualified renders "Language (Script, Region)" for tags the combined lookup
// mislabels.
func (r *Resolver) qualified(lang language.Tag, script language.Script, region language.Region) (string, bool) {
	name := r.namer.Name(lang)
	scriptName := r.scripts.Name(script)
	if name == "" || scriptName == "" {
		return "", false
	}
	qualifier := scriptName
	if region != (language.Region{}) {
		regionName := r.regions.Name(region)
		if regionName == "" {
			return "", false
		}
		qualifier += ", " + regionName
	}
	return name + " (" + qualifier + ")", true
}
