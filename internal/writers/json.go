package writers

import (
	"encoding/json"
	"io"

	"kmervec/internal/jsonlutil"
	"kmervec/internal/profile"
	"kmervec/pkg/api"
)

func init() {
	Register("json", writeJSON)
	Register("jsonl", writeJSONL)
}

// writeJSON buffers every profile and writes one indented JSON array.
func writeJSON(w io.Writer, a Args) error {
	list := make([]api.ProfileV1, 0, 16)
	for p := range a.In {
		list = append(list, profile.ToAPI(p))
	}
	bw, flush := jsonlutil.Buffered(w)
	enc := json.NewEncoder(bw)
	enc.SetIndent("", "  ")
	err := enc.Encode(list)
	if ferr := flush(); err == nil {
		err = ferr
	}
	return err
}

func writeJSONL(w io.Writer, a Args) error {
	pipe, done := StartJSONLWriter(w, 64)
	for p := range a.In {
		pipe <- p
	}
	close(pipe)
	return <-done
}

// StartJSONLWriter streams each Profile as one JSON line (v1).
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- profile.Profile, <-chan error) {
	return jsonlutil.Start[profile.Profile](out, bufSize,
		func(enc *json.Encoder, p profile.Profile) error {
			return enc.Encode(profile.ToAPI(p))
		},
		IsBrokenPipe,
	)
}
