// Package tools provides ready-made tools for reagent agents: a calculator,
// a clock, a Tavily-backed web search, a Python script runner, and a data
// portal log fetcher.
//
// Each tool carries its documentation as data; the description strings are
// rendered verbatim into the agent's system prompt, so they are written for
// the model, not for Go readers.
package tools
