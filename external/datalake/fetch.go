package datalake

import (
	"context"
	"strings"
)

type fetchSpec struct {
	Filter  string `json:"filter,omitempty"`
	Include string `json:"include,omitempty"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

type fetchResponse struct {
	Objs    []map[string]interface{} `json:"objs"`
	HasMore bool                     `json:"hasMore"`
}

// FetchAll implements DataLake. Pages of fetchLimit records are requested
// until the server reports no more; rows are flattened into dotted column
// names and concatenated into one table.
func (c *client) FetchAll(ctx context.Context, resource string, spec FetchSpec) (*Table, error) {
	table := NewTable()

	body := fetchSpec{
		Filter:  spec.Filter,
		Include: strings.Join(spec.Include, ","),
		Limit:   fetchLimit,
	}

	for {
		var page fetchResponse
		if err := c.post(ctx, resource, "fetch", body, &page); nil != err {
			return nil, err
		}

		for _, obj := range page.Objs {
			row := map[string]interface{}{}
			flatten("", obj, row)
			table.AppendRow(row)
		}

		if !page.HasMore {
			break
		}
		body.Offset += fetchLimit
	}

	if !spec.KeepMeta {
		table.DropPrefix("meta.")
		table.Drop("version")
	}

	return table, nil
}

// flatten turns nested objects into dotted keys, the column naming the rest
// of the pipeline works with.
func flatten(prefix string, obj map[string]interface{}, row map[string]interface{}) {
	for key, value := range obj {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			flatten(name, nested, row)
			continue
		}
		row[name] = value
	}
}
