package render

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/litescript/skyq/internal/query"
)

// field is one key of a record.
type field struct {
	key   string
	value any
}

// record is an ordered map: date first, then one key per column, or an
// error key for rows that failed.
type record []field

func records(res query.Result) []record {
	ks := keys(res)
	out := make([]record, len(res.Rows))
	for i, row := range res.Rows {
		rec := record{{"date", row.At.String()}}
		if row.Err != nil {
			rec = append(rec, field{"error", row.Err.Error()})
		} else {
			for j, v := range row.Values {
				rec = append(rec, field{ks[j], v.Data()})
			}
		}
		out[i] = rec
	}
	return out
}

// MarshalJSON writes the fields in order.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeMsgpack writes the fields as an order-preserving map.
func (r record) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(r)); err != nil {
		return err
	}
	for _, f := range r {
		if err := enc.EncodeString(f.key); err != nil {
			return err
		}
		if err := enc.Encode(f.value); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, res query.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records(res))
}

func writeMsgpack(w io.Writer, res query.Result) error {
	enc := msgpack.NewEncoder(w)
	recs := records(res)
	if err := enc.EncodeArrayLen(len(recs)); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
