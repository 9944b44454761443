package datalake

import (
	"context"
)

type metricsSpec struct {
	IDs         []string `json:"ids"`
	Expressions []string `json:"expressions"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Interval    string   `json:"interval"`
}

type metricSeries struct {
	Dates   []string  `json:"dates"`
	Data    []float64 `json:"data"`
	Missing []float64 `json:"missing"`
}

type metricsResponse struct {
	Result map[string]map[string]metricSeries `json:"result"`
}

// EvalMetrics implements DataLake. Requests are batched by entity ids
// (groups of 10) and metric expressions (groups of 4); the per-series
// dates/data/missing payloads are normalized into one shared "dates" column
// plus one "<id>.<expression>" column per pair. Fully missing points come
// back as nil cells.
func (c *client) EvalMetrics(ctx context.Context, resource string, ids []string, expressions []string, window MetricWindow) (*Table, error) {
	table := NewTable()

	for _, idGroup := range chunk(ids, idBatchSize) {
		for _, expressionGroup := range chunk(expressions, expressionBatchSize) {
			spec := metricsSpec{
				IDs:         idGroup,
				Expressions: expressionGroup,
				Start:       window.Start,
				End:         window.End,
				Interval:    window.Interval,
			}

			var response metricsResponse
			if err := c.post(ctx, resource, "evalmetrics", spec, &response); nil != err {
				return nil, err
			}

			// walk in request order so column order is reproducible
			for _, id := range idGroup {
				for _, expression := range expressionGroup {
					series, ok := response.Result[id][expression]
					if !ok {
						continue
					}

					if err := table.addSeries(id+"."+expression, series); nil != err {
						return nil, err
					}
				}
			}
		}
	}

	return table, nil
}

// addSeries appends one metric column, establishing or verifying the shared
// date column.
func (t *Table) addSeries(name string, series metricSeries) error {
	if len(series.Data) != len(series.Dates) {
		return ErrSeriesMismatch
	}

	dates := t.Column("dates")
	if dates == nil {
		values := make([]interface{}, len(series.Dates))
		for i, date := range series.Dates {
			values[i] = date
		}
		if err := t.AddColumn("dates", values); nil != err {
			return err
		}
	} else {
		if len(dates) != len(series.Dates) {
			return ErrSeriesMismatch
		}
		for i, date := range series.Dates {
			if dates[i] != date {
				return ErrSeriesMismatch
			}
		}
	}

	values := make([]interface{}, len(series.Data))
	for i, v := range series.Data {
		if i < len(series.Missing) && series.Missing[i] >= 100 {
			continue // fully missing point, leave the cell empty
		}
		values[i] = v
	}

	return t.AddColumn(name, values)
}
