package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/prognosis/cli"
	"github.com/bitmark-inc/prognosis/model"
	"github.com/bitmark-inc/prognosis/schema"
	"github.com/bitmark-inc/prognosis/utils"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	// prompts own stdout, logs go to stderr
	log.SetOutput(os.Stderr)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("prognosis")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle()

	// Load fitted artifacts. The scaler, the network, and the vocabulary
	// layout must agree on the feature count or every prediction would be
	// garbage, so disagreement is fatal here.
	scaler, err := model.LoadScaler(viper.GetString("model.scaler"))
	if nil != err {
		log.Panicf("load scaling parameters with error: %s", err)
	}

	network, err := model.LoadNetwork(
		viper.GetString("model.topology"),
		viper.GetString("model.weights"),
	)
	if nil != err {
		log.Panicf("load classifier with error: %s", err)
	}

	if scaler.Features() != schema.VectorLength() || network.Features() != schema.VectorLength() {
		log.Panicf("artifact schema mismatch: vocabulary has %d features, scaler %d, classifier %d",
			schema.VectorLength(), scaler.Features(), network.Features())
	}
	log.WithField("prefix", "init").Info("Loaded model artifacts")

	session := cli.NewSession(
		os.Stdin,
		os.Stdout,
		scaler,
		network,
		utils.NewLocalizer(viper.GetString("cli.lang")),
	)

	if err := session.Run(); nil != err {
		log.Panicf("interactive session with error: %s", err)
	}
}
