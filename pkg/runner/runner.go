package runner

import (
	"bytes"
	"io"
	"os"

	"github.com/dimiro1/banner"
)

var Version = "dev"

// PrintBanner writes the startup banner to w (stdout when nil).
func PrintBanner(w io.Writer, color bool) {
	if w == nil {
		w = os.Stdout
	}
	tpl := "{{ .Title \"TOOLCALL\" \"\" 0 }}\nVersion: " + Version + "\n"
	banner.Init(w, true, color, bytes.NewBufferString(tpl))
}
