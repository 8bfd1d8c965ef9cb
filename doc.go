// Package writeup scaffolds folders for security-challenge writeups and
// pre-fills a markdown report from a template.
//
// A writeup is filed as:
//
//	<base>/<YYYY>/<MM>-<MonthName>/<room-slug>/
//	    screenshots/
//	    exploits/
//	    REPORT.md
//
// REPORT.md is the template with its "* **Key**: value" lines set from the
// supplied metadata (a "## Metadata" section is added when the template has
// none) and a "* Host OS:" line describing the machine the report was
// started on.
//
// Usage:
//
//	gen := writeup.New(
//		writeup.WithBaseDir("./writeups"),
//		writeup.WithTemplatePath("./template.md"),
//	)
//
//	res, err := gen.Generate(ctx, writeup.Answers{Room: "Blue", Platform: "THM"})
package writeup
