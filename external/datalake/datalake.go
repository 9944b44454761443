package datalake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "datalake"

	defaultEndpoint = "https://api.c3.ai/covid/api/1"

	// fetchLimit is the page size of record fetches.
	fetchLimit = 2000

	// idBatchSize and expressionBatchSize keep evalmetrics requests inside
	// the API's implicit per-request limits.
	idBatchSize         = 10
	expressionBatchSize = 4
)

var (
	ErrTransport      = fmt.Errorf("data lake request failed")
	ErrSeriesMismatch = fmt.Errorf("time series dates do not line up")
)

// DataLake reads records and time series from the COVID-19 data lake and
// reshapes the nested JSON responses into flat tables.
type DataLake interface {
	// FetchAll pages through every record of a resource matching the spec.
	FetchAll(ctx context.Context, resource string, spec FetchSpec) (*Table, error)

	// EvalMetrics reads time-series metrics for a set of entities.
	EvalMetrics(ctx context.Context, resource string, ids []string, expressions []string, window MetricWindow) (*Table, error)
}

// FetchSpec narrows a record fetch.
type FetchSpec struct {
	// Filter is the server-side filter expression, e.g.
	// `contains(parent, "UnitedStates")`.
	Filter string

	// Include lists the fields to return; empty means everything.
	Include []string

	// KeepMeta keeps the meta.* and version bookkeeping columns that are
	// stripped by default.
	KeepMeta bool
}

// MetricWindow is the date range and sampling interval of a metrics read.
type MetricWindow struct {
	Start    string
	End      string
	Interval string
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

// New - a data lake client against the given endpoint. Pass an empty
// endpoint for the production API and a nil httpClient for the default one.
func New(endpoint string, httpClient *http.Client) DataLake {
	u := defaultEndpoint
	if endpoint != "" {
		u = endpoint
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &client{
		endpoint:   u,
		httpClient: httpClient,
	}
}

// post issues one {resource}/{operation} call with a JSON spec body. Any
// non-2xx status aborts with ErrTransport; there is no retry.
func (c *client) post(ctx context.Context, resource, operation string, spec interface{}, out interface{}) error {
	body, err := json.Marshal(map[string]interface{}{"spec": spec})
	if nil != err {
		return err
	}

	url := fmt.Sprintf("%s/%s/%s", c.endpoint, resource, operation)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("post spec")
		return err
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"url":    url,
			"status": resp.StatusCode,
		}).Error("data lake rejected request")
		return fmt.Errorf("%w: %s/%s: status %d: %.200s", ErrTransport, resource, operation, resp.StatusCode, data)
	}

	return json.Unmarshal(data, out)
}

func chunk(items []string, size int) [][]string {
	var chunks [][]string
	for size < len(items) {
		chunks = append(chunks, items[:size])
		items = items[size:]
	}
	return append(chunks, items)
}
