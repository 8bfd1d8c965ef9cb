package writeup_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/writeup"
)

// Example_basic files a writeup for a room and prints where it went.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "writeup-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	tpl := filepath.Join(tmpDir, "template.md")
	if err := os.WriteFile(tpl, []byte("# Report\n\n## 2) Environment & Tools\n"), 0644); err != nil {
		log.Fatal(err)
	}

	gen := writeup.New(
		writeup.WithBaseDir(tmpDir),
		writeup.WithTemplatePath(tpl),
		writeup.WithClock(func() time.Time { return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC) }),
		writeup.WithHostOS(func() string { return "Kali GNU/Linux Rolling" }),
	)

	res, err := gen.Generate(context.Background(), writeup.Answers{Room: "My Room!", Platform: "THM"})
	if err != nil {
		log.Fatal(err)
	}

	rel, _ := filepath.Rel(tmpDir, res.Layout.Report)
	fmt.Println(filepath.ToSlash(rel))
	fmt.Println(res.Metadata.Date, res.Metadata.Author)
	// Output:
	// 2024/03-March/my-room/REPORT.md
	// 2024-03-15 R0b1
}

func ExampleSlugify() {
	fmt.Println(writeup.Slugify("Café Olé: Part II"))
	fmt.Println(writeup.Slugify("!!!"))
	// Output:
	// cafe-ole-part-ii
	// untitled
}
