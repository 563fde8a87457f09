package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
	FormatFASTQ = "fastq"
)

// TSVHeader is the optional header row for demux text output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "read_id\tbarcode\tdistance\tstart\tend"

// Missing fills every demux column of an unassigned read.
const Missing = "-"
