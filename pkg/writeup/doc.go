// Package writeup is the composition root for the writeup tool.
//
// It wires the slug generator, the host OS detector, the report patcher and
// the filesystem adapter into a single Generate call that files a new
// writeup under <base>/<YYYY>/<MM>-<MonthName>/<slug>/.
//
// Usage:
//
//	gen := writeup.New(
//		writeup.WithBaseDir("./writeups"),
//		writeup.WithTemplatePath("./template.md"),
//		writeup.WithLogger(logger),
//	)
//
//	res, err := gen.Generate(ctx, core.Answers{Room: "Blue", Platform: "THM"})
package writeup
