// Package extract turns a fetched calendar page into match records.
//
// Three strategies are tried in priority order: card markup, tabular markup,
// and a free-text line scan. Each strategy assumes a different page
// structure, so the pipeline keeps the first non-empty result and never
// mixes outputs from different strategies.
package extract
