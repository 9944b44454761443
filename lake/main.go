package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/prognosis/external/datalake"
)

const (
	logPrefix      = "lake"
	defaultTimeout = 5 * time.Minute
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

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

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func main() {
	var configFile, resource, filter, include, ids, expressions, start, end, interval, output string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&resource, "resource", "outbreaklocation", "data lake resource to read")
	flag.StringVar(&filter, "filter", "", "[optional] server-side filter for a record fetch")
	flag.StringVar(&include, "include", "", "[optional] comma-separated fields for a record fetch")
	flag.StringVar(&ids, "ids", "", "comma-separated entity ids; set to read time series instead of records")
	flag.StringVar(&expressions, "expressions", "JHU_ConfirmedCases,JHU_ConfirmedDeaths", "comma-separated metric expressions")
	flag.StringVar(&start, "start", "2020-01-01", "start of the date range")
	flag.StringVar(&end, "end", "2020-05-01", "end of the date range")
	flag.StringVar(&interval, "interval", "DAY", "sampling interval of the time series")
	flag.StringVar(&output, "o", "", "[optional] write csv to this file instead of stdout")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: defaultTimeout,
	}
	lake := datalake.New(viper.GetString("datalake.endpoint"), httpClient)

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var table *datalake.Table
	var err error
	if ids != "" {
		table, err = lake.EvalMetrics(ctx, resource, splitList(ids), splitList(expressions), datalake.MetricWindow{
			Start:    start,
			End:      end,
			Interval: interval,
		})
	} else {
		table, err = lake.FetchAll(ctx, resource, datalake.FetchSpec{
			Filter:  filter,
			Include: splitList(include),
		})
	}
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "resource": resource, "error": err}).Panic("read data lake")
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"resource": resource,
		"rows":     table.Len(),
		"columns":  len(table.Columns()),
	}).Info("data lake read done")

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if nil != err {
			log.Panicf("create output file with error: %s", err)
		}
		defer f.Close()
		out = f
	}

	if err := table.WriteCSV(out); nil != err {
		log.Panicf("write csv with error: %s", err)
	}
}
