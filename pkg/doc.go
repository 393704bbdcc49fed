// Package pkg provides the libraries behind addonscan, a survey of npm
// packages that ship native addons.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [survey] - The classification pipeline, its counters and the report
//  2. [native] - Type detection and enrichment for native npm packages
//  3. [integrations] - npm and GitHub API clients
//  4. [cache] - File, Redis and null response caches
//  5. [exclude], [mdtable], [ndjson] - Denylist, table rendering and input decoding
//
// # Architecture
//
// The typical data flow through addonscan:
//
//	NDJSON package documents
//	         ↓
//	    [ndjson] + [survey.JSONSource] (one record per line)
//	         ↓
//	    [survey.Consumer] (one record in flight)
//	         ↓
//	    [survey.Classifier] ([exclude.Set], [native.Provider])
//	         ↓
//	    [survey.Report] → [mdtable] → Markdown
//
// # Quick Start
//
//	set := exclude.New()
//	provider := native.New(npm.NewClient(c, ttl), github.NewClient(c, token, ttl))
//	classifier := survey.NewClassifier(set, provider, survey.WithDiagnostics(os.Stderr))
//	report, err := survey.NewConsumer(classifier, nil).Run(ctx, survey.NewJSONSource(os.Stdin))
//	if err != nil {
//	    return err
//	}
//	report.WriteMarkdown(os.Stdout, mdtable.New())
//	report.WriteSummary(os.Stderr)
package pkg
