package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// notification translations shipped with the service; english is the
// fallback language
var messageFiles = []string{"en.yaml", "ne.yaml"}

// InitI18NBundle loads the notification translations from i18n.dir.
func InitI18NBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, f := range messageFiles {
		b.MustLoadMessageFile(path.Join(viper.GetString("i18n.dir"), f))
	}
	bundle = b
}

func NewLocalizer(lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}
