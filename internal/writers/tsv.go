package writers

import (
	"io"
	"strconv"

	"kmervec/internal/jsonlutil"
)

// TSVHeader is the column line of the text and tsv outputs.
const TSVHeader = "sequence_id\tkmer\tindex\tcount"

func init() {
	Register("tsv", writeTSV)
	Register("text", writeTSV)
}

// writeTSV streams one row per k-mer entry. After a write error the input
// is still drained so the producer never blocks.
func writeTSV(w io.Writer, a Args) error {
	bw, flush := jsonlutil.Buffered(w)
	var err error
	if a.Header {
		_, err = bw.WriteString(TSVHeader + "\n")
	}
	var line []byte
	for p := range a.In {
		if err != nil {
			continue
		}
		for _, e := range p.Entries {
			line = line[:0]
			line = append(line, p.ID...)
			line = append(line, '\t')
			line = append(line, p.Label(e.Index)...)
			line = append(line, '\t')
			line = strconv.AppendUint(line, e.Index, 10)
			line = append(line, '\t')
			line = strconv.AppendUint(line, e.Count, 10)
			line = append(line, '\n')
			if _, err = bw.Write(line); err != nil {
				break
			}
		}
	}
	if ferr := flush(); err == nil {
		err = ferr
	}
	return err
}
