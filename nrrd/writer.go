package nrrd

import (
	"bufio"
	"fmt"
	"io"
)

// fieldPriority is the serialization order for the structural fields.
// They come first, in this order, when present; every other field follows
// in the order it was declared.
var fieldPriority = []string{"type", "dimension", "sizes"}

// Write serializes a record: magic line, fields, key/values, a blank
// separator line, then the payload bytes verbatim with no trailing
// newline. Write is a pure serializer; it never re-derives or validates
// field content against the buffer.
func Write(n *Nrrd, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\n", n.version.Magic()); err != nil {
		return fmt.Errorf("writing magic line: %w", err)
	}

	written := make(map[string]bool, len(fieldPriority))
	for _, id := range fieldPriority {
		f, ok := n.Field(id)
		if !ok {
			continue
		}
		if err := writeField(bw, f); err != nil {
			return err
		}
		written[id] = true
	}
	for _, f := range n.fields {
		if written[f.Identifier] {
			continue
		}
		if err := writeField(bw, f); err != nil {
			return err
		}
	}

	for _, kv := range n.keyValues {
		if _, err := fmt.Fprintf(bw, "%s:=%s\n", kv.Key, kv.Value); err != nil {
			return fmt.Errorf("writing key/value: %w", err)
		}
	}

	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing header terminator: %w", err)
	}
	if _, err := bw.Write(n.buffer); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return bw.Flush()
}

func writeField(bw *bufio.Writer, f Field) error {
	if _, err := fmt.Fprintf(bw, "%s: %s\n", f.Identifier, f.Descriptor); err != nil {
		return fmt.Errorf("writing field %q: %w", f.Identifier, err)
	}
	return nil
}
