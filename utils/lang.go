package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads the prompt message catalogs from the configured i18n
// directory. A missing catalog only logs a warning since every message in
// the CLI carries an english default.
func InitI18NBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	file := path.Join(dir, "en.yaml")
	if _, err := bundle.LoadMessageFile(file); nil != err {
		log.WithField("prefix", "i18n").Warnf("message file %s not loaded: %s", file, err)
	}
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle()
	}

	return i18n.NewLocalizer(bundle, lang)
}
