package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'llcalc.cli'.
func tracer() tracing.Trace {
	return tracing.Select("llcalc.cli")
}

// runID identifies the current invocation in trace output.
var runID string

// initTracing configures trace2go from conf and installs it as the global
// trace selector. Trace levels are read from keys "tracelevel.<tracer>".
func initTracing(conf *Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	runID = uuid.New().String()
	tracer().P("run", runID).Infof("tracing configured, adapter = %s", conf.GetString("tracing.adapter"))
	return nil
}
