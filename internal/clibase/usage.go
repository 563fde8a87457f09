// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"barsplit/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, marker flags, formats).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: barcode demultiplexing and adapter splitting for long reads\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --reads file            FASTA/FASTQ reads (repeatable) or '-' for STDIN; .gz/.zst/.lz4 ok")

		fmt.Fprintln(out, "\nMatching:")
		fmt.Fprintf(out, "  -k, --max-dist int          Max edit distance per marker (-1=tool default) [%s]\n", def("max-dist"))
		if fs.Lookup("resolve") != nil {
			fmt.Fprintf(out, "      --resolve string        Overlap resolution: first | greedy [%s]\n", def("resolve"))
		}
		fmt.Fprintf(out, "      --hit-cap int           Max raw hits per marker per read (0=unlimited) [%s]\n", def("hit-cap"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output format [%s]\n", def("output"))
		fmt.Fprintf(out, "      --out file              Output file; compressed by suffix [%s]\n", def("out"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when nothing matched [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nDiagnostics:")
		fmt.Fprintln(out, "      --metrics-file file     Write Prometheus text metrics at exit")
		fmt.Fprintf(out, "      --progress              Progress bar on stderr [%s]\n", def("progress"))
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
	}
}
