package omikuji

// Kind selects how a field's raw bits map onto its value domain.
type Kind int

const (
	// KindIdentity keeps the raw unsigned value.
	KindIdentity Kind = iota
	// KindModRange maps raw to raw%Mod + Add. When 2^Width is not a
	// multiple of Mod this skews slightly toward smaller values; that
	// bias is part of the frozen output contract, so no rejection
	// sampling here.
	KindModRange
	// KindPow2 maps raw to 1<<raw.
	KindPow2
	// KindChar maps raw to the rune Base + raw%Mod.
	KindChar
	// KindTable maps raw to Table[raw%len(Table)].
	KindTable
	// KindScores performs Count independent identity reads of Width
	// bits each, Stride bits apart.
	KindScores
)

// FieldSpec describes one decoded field: where its bits live in the
// digest and how they map to a value. The catalog below is a frozen wire
// contract — the same seed must produce the same fortune forever — so
// offsets, widths, moduli, and table contents must never change.
type FieldSpec struct {
	Name   string
	Offset int // absolute bit offset into the digest
	Width  int // bits per read
	Kind   Kind

	Mod    uint64   // KindModRange, KindChar
	Add    int64    // KindModRange
	Base   rune     // KindChar
	Table  []string // KindTable
	Count  int      // KindScores: number of reads
	Stride int      // KindScores: bit distance between reads
}

// Value is the decoded result of one field. Which member is set follows
// the field's Kind: Num for identity/modulo/power-of-two fields, Char for
// character fields, Text for table lookups, Scores for the score block.
type Value struct {
	Num    int64
	Char   rune
	Text   string
	Scores []uint8
}

// Catalog is the full fixed set of fortune fields, in presentation order.
// Fields occupy disjoint bit ranges; offsets are absolute and the last
// used bit is 241 of 255.
var Catalog = []FieldSpec{
	{Name: "lucky_number", Offset: 0, Width: 8, Kind: KindIdentity},
	{Name: "lucky_hex", Offset: 8, Width: 8, Kind: KindIdentity},
	{Name: "lucky_bits", Offset: 16, Width: 16, Kind: KindIdentity},
	{Name: "lucky_day", Offset: 32, Width: 9, Kind: KindModRange, Mod: 365, Add: 1},
	{Name: "lucky_hour", Offset: 41, Width: 5, Kind: KindModRange, Mod: 24},
	{Name: "lucky_minute", Offset: 46, Width: 6, Kind: KindModRange, Mod: 60},
	{Name: "lucky_power_of_2", Offset: 52, Width: 3, Kind: KindPow2},
	{Name: "lucky_ascii", Offset: 55, Width: 7, Kind: KindChar, Base: 32, Mod: 95},
	{Name: "lucky_logic_gate", Offset: 62, Width: 3, Kind: KindTable,
		Table: []string{"AND", "OR", "XOR", "NOT", "NAND", "NOR", "XNOR", "BUFFER"}},
	{Name: "luck_scores", Offset: 65, Width: 8, Kind: KindScores, Count: 16, Stride: 8},
	{Name: "entropy_check", Offset: 193, Width: 12, Kind: KindIdentity},
	// Unicode Emoticons block: U+1F600..U+1F63F, 64 smileys.
	{Name: "lucky_emoji", Offset: 205, Width: 6, Kind: KindChar, Base: 0x1F600, Mod: 64},
	{Name: "lucky_direction", Offset: 211, Width: 3, Kind: KindTable,
		Table: []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}},
	{Name: "lucky_element", Offset: 214, Width: 4, Kind: KindTable,
		Table: []string{
			"H (1)", "He (2)", "C (6)", "N (7)", "O (8)", "Na (11)", "Mg (12)", "Al (13)",
			"Si (14)", "Fe (26)", "Cu (29)", "Ag (47)", "Au (79)", "Pt (78)", "Pb (82)", "U (92)",
		}},
	{Name: "lucky_percent", Offset: 218, Width: 7, Kind: KindModRange, Mod: 101},
	{Name: "lucky_latitude", Offset: 225, Width: 8, Kind: KindModRange, Mod: 181, Add: -90},
	{Name: "lucky_longitude", Offset: 233, Width: 9, Kind: KindModRange, Mod: 361, Add: -180},
}

// End returns one past the highest bit the field reads.
func (fs FieldSpec) End() int {
	if fs.Kind == KindScores {
		return fs.Offset + (fs.Count-1)*fs.Stride + fs.Width
	}
	return fs.Offset + fs.Width
}

// Decode extracts this field's value from the digest.
func (fs FieldSpec) Decode(d Digest) Value {
	if fs.Kind == KindScores {
		scores := make([]uint8, fs.Count)
		for i := range scores {
			scores[i] = uint8(d.ReadBits(fs.Offset+i*fs.Stride, fs.Width))
		}
		return Value{Scores: scores}
	}

	raw := d.ReadBits(fs.Offset, fs.Width)
	switch fs.Kind {
	case KindModRange:
		return Value{Num: int64(raw%fs.Mod) + fs.Add}
	case KindPow2:
		return Value{Num: 1 << raw}
	case KindChar:
		return Value{Char: fs.Base + rune(raw%fs.Mod)}
	case KindTable:
		return Value{Text: fs.Table[raw%uint64(len(fs.Table))]}
	default:
		return Value{Num: int64(raw)}
	}
}

// DecodeAll applies the full catalog to the digest. The result maps field
// name to decoded value; use Catalog for stable ordering.
func DecodeAll(d Digest) map[string]Value {
	out := make(map[string]Value, len(Catalog))
	for _, fs := range Catalog {
		out[fs.Name] = fs.Decode(d)
	}
	return out
}
