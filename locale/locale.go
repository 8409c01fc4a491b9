package locale

import (
	"errors"
	"fmt"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// ErrInvalid flags a locale string which is not a well-formed language tag.
var ErrInvalid = errors.New("invalid locale")

// Fallback is the locale used if the environment does not tell.
const Fallback = "en-US"

// Context represents information about the language environment of the user.
type Context struct {
	Tag    language.Tag    // BCP 47 language tag
	Script language.Script // ISO 15924 script identifier
	Locale string          // locale string as given or detected
}

// Latin is a context for US English.
var Latin = &Context{
	Tag:    language.AmericanEnglish,
	Script: language.MustParseScript("Latn"),
	Locale: Fallback,
}

// FromEnvironment detects the user's locale from the environment
// ($LC_ALL, $LANG, …). If detection fails, the context for Fallback is
// returned.
func FromEnvironment() *Context {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		T().Infof("locale: using default user locale %v", Fallback)
		return Latin
	}
	ctx, err := Parse(userLocale)
	if err != nil {
		T().Errorf("locale: detected unusable user locale %q: %v", userLocale, err)
		return Latin
	}
	T().Infof("locale: detected user locale %v", ctx.Tag)
	return ctx
}

// Parse creates a context for a locale string, either in POSIX or in BCP 47
// form. Errors wrap ErrInvalid.
func Parse(s string) (*Context, error) {
	norm := Normalize(s)
	if norm == "" {
		return nil, fmt.Errorf("%w: empty locale", ErrInvalid)
	}
	tag, err := language.Parse(norm)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	script, _ := tag.Script()
	return &Context{
		Tag:    tag,
		Script: script,
		Locale: s,
	}, nil
}

// Normalize turns a POSIX locale like "pt_PT.UTF-8" or "ca_ES@valencia" into
// BCP 47 form ("pt-PT", "ca-ES"). Other strings are returned with
// surrounding white space removed.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}

// Base returns the base language of a locale string, e.g. "pt" for "pt_PT".
// If s cannot be parsed, Base returns "und".
func Base(s string) string {
	ctx, err := Parse(s)
	if err != nil {
		return language.Und.String()
	}
	base, _ := ctx.Tag.Base()
	return base.String()
}

func (ctx *Context) String() string {
	return ctx.Tag.String()
}
