package analytics

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/fundview/analytics/date"
)

// ExtractObservations pulls a dated value series out of an arbitrary JSON
// document (as decoded into any) using two jsonpath expressions, one for
// the dates and one for the values. Both paths must select lists of the
// same length; dates are ISO strings, values are numbers.
//
// This is how a series is lifted out of a backend payload whose exact
// shape we do not control, e.g.
//
//	datesPath:  "$.navHistory[*].date"
//	valuesPath: "$.navHistory[*].value"
func ExtractObservations(jobj any, datesPath, valuesPath string) (*date.History[float64], error) {
	jdates, err := jsonpath.Get(datesPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating dates path %q: %w", datesPath, err)
	}
	jvalues, err := jsonpath.Get(valuesPath, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating values path %q: %w", valuesPath, err)
	}

	dates, ok := jdates.([]any)
	if !ok {
		return nil, fmt.Errorf("dates path %q: not a list", datesPath)
	}
	values, ok := jvalues.([]any)
	if !ok {
		return nil, fmt.Errorf("values path %q: not a list", valuesPath)
	}
	if len(dates) != len(values) {
		return nil, fmt.Errorf("paths select %d dates but %d values", len(dates), len(values))
	}

	h := new(date.History[float64])
	for i := range dates {
		str, ok := dates[i].(string)
		if !ok {
			return nil, fmt.Errorf("dates path %q: element %d is not a string: %v", datesPath, i, dates[i])
		}
		on, err := date.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("dates path %q: element %d: %w", datesPath, i, err)
		}
		// json numbers decode as float64.
		val, ok := values[i].(float64)
		if !ok {
			return nil, fmt.Errorf("values path %q: element %d is not a number: %v", valuesPath, i, values[i])
		}
		h.Append(on, val)
	}
	return h, nil
}
