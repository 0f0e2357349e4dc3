// Package output formats a decoded fortune for humans (text) or
// machines (JSON).
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/elzup/hash-omikuji/internal/omikuji"
)

// Draw bundles everything the presentation layer needs about one draw.
type Draw struct {
	Year        uint32
	User        string
	Seed        string
	Digest      omikuji.Digest
	Fields      map[string]omikuji.Value
	Fingerprint string
}

// Options controls rendering.
type Options struct {
	// ShowSeed includes the raw seed string in the output.
	ShowSeed bool
	// Short lists only the top 5 luck scores in text output. JSON output
	// is a stable wire format and always carries everything.
	Short bool
}

// Text writes the human-readable fortune.
func Text(w io.Writer, d Draw, opts Options) error {
	fmt.Fprintf(w, "hash-omikuji — %d fortune for %s\n\n", d.Year, d.User)
	if opts.ShowSeed {
		fmt.Fprintf(w, "seed:        %s\n", d.Seed)
	}
	fmt.Fprintf(w, "digest:      %s\n", d.Digest.Hex())
	fmt.Fprintf(w, "fingerprint: [%s]\n\n", d.Fingerprint)

	for _, fs := range omikuji.Catalog {
		v := d.Fields[fs.Name]
		if fs.Kind == omikuji.KindScores {
			continue // rendered as its own section below
		}
		fmt.Fprintf(w, "  %-18s %s\n", label(fs.Name), formatField(fs, v))
	}

	scores := d.Fields["luck_scores"].Scores
	fmt.Fprintf(w, "\n  luck scores")
	if opts.Short {
		fmt.Fprintf(w, " (top 5)\n")
		for _, i := range topScores(scores, 5) {
			fmt.Fprintf(w, "    #%-2d  %3d/255\n", i+1, scores[i])
		}
	} else {
		fmt.Fprintln(w)
		for i, s := range scores {
			fmt.Fprintf(w, "    #%-2d  %3d/255\n", i+1, s)
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write fortune: %w", err)
	}
	return nil
}

// JSON writes the fortune as one JSON object. Field values appear under
// "fields" keyed by catalog name; table and character fields are
// strings, everything else numbers.
func JSON(w io.Writer, d Draw, opts Options) error {
	fields := make(map[string]any, len(omikuji.Catalog))
	for _, fs := range omikuji.Catalog {
		v := d.Fields[fs.Name]
		switch fs.Kind {
		case omikuji.KindTable:
			fields[fs.Name] = v.Text
		case omikuji.KindChar:
			fields[fs.Name] = string(v.Char)
		case omikuji.KindScores:
			// []uint8 would marshal as base64; keep scores a JSON array.
			scores := make([]int, len(v.Scores))
			for i, s := range v.Scores {
				scores[i] = int(s)
			}
			fields[fs.Name] = scores
		default:
			fields[fs.Name] = v.Num
		}
	}

	payload := struct {
		Year        uint32         `json:"year"`
		User        string         `json:"user"`
		Seed        string         `json:"seed,omitempty"`
		Digest      string         `json:"digest"`
		Fingerprint string         `json:"fingerprint"`
		Fields      map[string]any `json:"fields"`
	}{
		Year:        d.Year,
		User:        d.User,
		Digest:      d.Digest.Hex(),
		Fingerprint: d.Fingerprint,
		Fields:      fields,
	}
	if opts.ShowSeed {
		payload.Seed = d.Seed
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode fortune: %w", err)
	}
	return nil
}

// formatField renders one field value for text output. A few fields get
// bespoke formats; the rest fall back to their kind.
func formatField(fs omikuji.FieldSpec, v omikuji.Value) string {
	switch fs.Name {
	case "lucky_hex":
		return fmt.Sprintf("0x%02X", v.Num)
	case "lucky_bits":
		return fmt.Sprintf("%016b", v.Num)
	case "lucky_day":
		return fmt.Sprintf("day %d of 365", v.Num)
	case "lucky_hour":
		return fmt.Sprintf("%02d:00", v.Num)
	case "lucky_minute":
		return fmt.Sprintf("minute %02d", v.Num)
	case "lucky_percent":
		return fmt.Sprintf("%d%%", v.Num)
	case "lucky_latitude":
		return fmt.Sprintf("%d°", v.Num)
	case "lucky_longitude":
		return fmt.Sprintf("%d°", v.Num)
	case "entropy_check":
		return fmt.Sprintf("0x%03X", v.Num)
	case "lucky_ascii":
		return fmt.Sprintf("%q", v.Char)
	}

	switch fs.Kind {
	case omikuji.KindTable:
		return v.Text
	case omikuji.KindChar:
		return string(v.Char)
	default:
		return fmt.Sprintf("%d", v.Num)
	}
}

// label turns a catalog name into a display label.
func label(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// topScores returns the indices of the n highest scores, highest first,
// ties broken by lower index.
func topScores(scores []uint8, n int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	if n > len(idx) {
		n = len(idx)
	}
	return idx[:n]
}
