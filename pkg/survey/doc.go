// Package survey classifies a stream of npm package records and reports the
// ones that ship native code.
//
// # Pipeline
//
// Every [Record] moves through four checks, cheapest first:
//
//  1. Exclusion: names on the denylist are dropped without any lookup.
//  2. Type detection: the [Provider] inspects package.json for a native
//     build toolchain. Records without one are "uncertain".
//  3. Popularity: monthly downloads are fetched. Fewer than the threshold
//     (1000 by default) drops the record. A failed lookup counts as zero.
//  4. Enrichment: prebuilt binaries, N-API usage and repository language
//     are fetched. A failure here is reported but never drops the record.
//
// The [Consumer] requests the next record only after the current one has
// finished all four checks, so at most one record has requests in flight.
//
// # Reporting
//
// The [Report] holds the counters and the admitted records. Rows are sorted
// by downloads (stable) and rendered as a Markdown table:
//
//	report, err := survey.NewConsumer(classifier, logger).Run(ctx, survey.NewJSONSource(os.Stdin))
//	if err != nil {
//	    return err
//	}
//	report.WriteMarkdown(os.Stdout, mdtable.New())
//	report.WriteSummary(os.Stderr)
package survey
