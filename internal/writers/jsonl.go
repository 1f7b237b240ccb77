// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"uspa/internal/jsonlutil"
	"uspa/pkg/api"
)

// StartMotifJSONLWriter streams each motif as one JSON line (v1).
func StartMotifJSONLWriter(out io.Writer, bufSize int) (chan<- api.MotifV1, <-chan error) {
	return jsonlutil.Start[api.MotifV1](out, bufSize,
		func(enc *json.Encoder, m api.MotifV1) error {
			return enc.Encode(m)
		},
		IsBrokenPipe,
	)
}
