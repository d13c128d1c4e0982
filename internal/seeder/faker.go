package seeder

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seedforge-io/seedforge/internal/schema"
)

// epoch anchors every generated date and timestamp so a run is reproducible
// down to the byte regardless of when it executes.
var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Generator produces abstract rows for a table. Each row is derived from a
// rand.Rand seeded by (run seed, table name, row index), so any row can be
// regenerated independently and two runs with the same seed are identical.
type Generator struct {
	seed       int64
	nullChance float64
	maxListLen int
}

func NewGenerator(seed int64, nullChance float64, maxListLen int) *Generator {
	if nullChance <= 0 {
		nullChance = 0.03
	}
	if maxListLen < 1 {
		maxListLen = 5
	}
	return &Generator{seed: seed, nullChance: nullChance, maxListLen: maxListLen}
}

func (g *Generator) Seed() int64 { return g.seed }

func (g *Generator) rowRand(table string, index int) *rand.Rand {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d\x00%s\x00%d", g.seed, table, index)
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// Row generates the values for one row, aligned with t.InsertColumns().
// Identity columns are omitted; the database assigns them.
func (g *Generator) Row(t schema.Table, index int) (schema.Row, error) {
	rng := g.rowRand(t.Name, index)
	cols := t.InsertColumns()
	row := make(schema.Row, len(cols))
	for i, col := range cols {
		v, err := g.value(col, rng, index)
		if err != nil {
			return nil, fmt.Errorf("table %s: column %s: %w", t.Name, col.Name, err)
		}
		row[i] = v
	}
	if t.Derive != "" {
		policy, ok := derivePolicies[t.Derive]
		if !ok {
			return nil, fmt.Errorf("table %s: unknown derive policy %q", t.Name, t.Derive)
		}
		if err := policy(cols, row, rng); err != nil {
			return nil, fmt.Errorf("table %s: derive %s: %w", t.Name, t.Derive, err)
		}
	}
	return row, nil
}

func (g *Generator) value(col schema.Column, rng *rand.Rand, index int) (any, error) {
	if col.Nullable && rng.Float64() < g.nullChance {
		return nil, nil
	}

	switch col.Type.Kind {
	case schema.KindBool:
		return rng.Intn(2) == 1, nil
	case schema.KindInt8:
		return int64(rng.Intn(128)), nil
	case schema.KindInt16:
		return g.smallInt(col, rng, index), nil
	case schema.KindInt32:
		if col.Unique {
			return int64(index + 1), nil
		}
		return int64(rng.Intn(1000000) + 1), nil
	case schema.KindInt64:
		if col.Unique {
			return int64(index + 1), nil
		}
		return rng.Int63n(1000000000), nil
	case schema.KindFloat32:
		return math.Round(rng.Float64()*10000) / 100, nil
	case schema.KindFloat64:
		return g.floatForColumn(col, rng), nil
	case schema.KindDecimal:
		return g.decimalForColumn(col, rng), nil
	case schema.KindMoney:
		return decimal.New(rng.Int63n(10000000), -4), nil
	case schema.KindString, schema.KindFixedString:
		return g.stringForColumn(col, rng, index), nil
	case schema.KindBytes:
		return randBytes(rng, 8+rng.Intn(25)), nil
	case schema.KindFixedBytes:
		return randBytes(rng, col.Type.MaxLen), nil
	case schema.KindUUID:
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("failed to generate uuid: %w", err)
		}
		return id, nil
	case schema.KindDate:
		return g.dateForColumn(col, rng), nil
	case schema.KindTime:
		return schema.TimeOfDay{Hour: rng.Intn(24), Minute: rng.Intn(60), Second: rng.Intn(60)}, nil
	case schema.KindTimestamp, schema.KindTimestampTZ:
		return epoch.Add(-time.Duration(rng.Int63n(2*365*24*3600)) * time.Second), nil
	case schema.KindJSON:
		return g.jsonForColumn(col, rng), nil
	case schema.KindList:
		return g.listForColumn(col, rng), nil
	case schema.KindEnum:
		return col.Type.Values[rng.Intn(len(col.Type.Values))], nil
	case schema.KindInterval:
		return schema.Months(rng.Intn(36) + 1), nil
	case schema.KindInet:
		return randIPv4(rng), nil
	case schema.KindMACAddr:
		return randMAC(rng), nil
	}
	return nil, fmt.Errorf("no generator for kind %s", col.Type.Kind)
}

func (g *Generator) smallInt(col schema.Column, rng *rand.Rand, index int) int64 {
	name := strings.ToLower(col.Name)
	switch {
	case col.Unique:
		return int64(index + 1)
	case strings.Contains(name, "signal_strength"):
		return -int64(30 + rng.Intn(91))
	case strings.Contains(name, "level"):
		return int64(rng.Intn(10) + 1)
	case strings.Contains(name, "years"):
		return int64(rng.Intn(41))
	default:
		return int64(rng.Intn(10000))
	}
}

func (g *Generator) floatForColumn(col schema.Column, rng *rand.Rand) float64 {
	name := strings.ToLower(col.Name)
	switch {
	case strings.Contains(name, "tax_rate"):
		return math.Round((0.05+rng.Float64()*0.20)*10000) / 10000
	case strings.Contains(name, "exchange_rate"):
		return math.Round((0.5+rng.Float64()*99.5)*10000) / 10000
	case strings.Contains(name, "rating"):
		return math.Round((1+rng.Float64()*4)*100) / 100
	case strings.Contains(name, "score"):
		return math.Round(rng.Float64()*10000) / 100
	default:
		return rng.Float64() * 10000
	}
}

// decimalForColumn builds an exact value that always fits the declared
// precision and scale. A few well-known measurements get realistic ranges.
func (g *Generator) decimalForColumn(col schema.Column, rng *rand.Rand) decimal.Decimal {
	if d, ok := hintedDecimal(col, rng); ok {
		return d
	}

	// Random digits are capped so the unscaled value stays in int64 range;
	// emitting fewer fractional digits than the declared scale is fine.
	intDigits := col.Type.Precision - col.Type.Scale
	if intDigits > 6 {
		intDigits = 6
	}
	fracDigits := col.Type.Scale
	if fracDigits > 9 {
		fracDigits = 9
	}
	units := rng.Int63n(pow10(intDigits))
	frac := rng.Int63n(pow10(fracDigits))
	return decimal.New(units*pow10(fracDigits)+frac, -int32(fracDigits))
}

// hintedDecimal gives well-known measurement columns realistic ranges. The
// hint only applies when the declared type can hold the range exactly.
func hintedDecimal(col schema.Column, rng *rand.Rand) (decimal.Decimal, bool) {
	name := strings.ToLower(col.Name)
	var lo, hi int64
	switch {
	case strings.Contains(name, "temperature"):
		lo, hi = -40, 85
	case strings.Contains(name, "humidity"):
		lo, hi = 0, 100
	case strings.Contains(name, "pressure"):
		lo, hi = 950, 1050
	case strings.Contains(name, "latitude"):
		lo, hi = -90, 90
	case strings.Contains(name, "longitude"):
		lo, hi = -180, 180
	case strings.Contains(name, "rating"):
		lo, hi = 1, 5
	default:
		return decimal.Decimal{}, false
	}

	scale := col.Type.Scale
	if scale > 9 {
		return decimal.Decimal{}, false
	}
	bound := hi
	if -lo > bound {
		bound = -lo
	}
	intDigits := col.Type.Precision - scale
	if intDigits <= 4 && pow10(intDigits) <= bound {
		return decimal.Decimal{}, false
	}
	loUnscaled := lo * pow10(scale)
	hiUnscaled := hi * pow10(scale)
	return decimal.New(loUnscaled+rng.Int63n(hiUnscaled-loUnscaled+1), -int32(scale)), true
}

func (g *Generator) stringForColumn(col schema.Column, rng *rand.Rand, index int) string {
	var s string
	switch {
	case col.Prefix != "" && col.Unique:
		s = fmt.Sprintf("%s-%s-%06d", col.Prefix, epoch.Format("200601"), index+1)
	case col.Prefix != "":
		s = fmt.Sprintf("%s-%04d", col.Prefix, rng.Intn(9000)+1000)
	case col.Pool != "":
		s = g.fromPool(col.Pool, rng)
	case col.Type.Kind == schema.KindFixedString:
		s = randString(rng, col.Type.MaxLen, alnum)
	default:
		s = g.textByName(col, rng, index)
	}
	if col.Type.MaxLen > 0 && len(s) > col.Type.MaxLen {
		s = s[:col.Type.MaxLen]
	}
	return s
}

// textByName mirrors the usual column naming conventions so free-text
// columns read plausibly without per-table configuration.
func (g *Generator) textByName(col schema.Column, rng *rand.Rand, index int) string {
	name := strings.ToLower(col.Name)
	switch {
	case strings.Contains(name, "email"):
		return fmt.Sprintf("%s.%s%d@%s",
			strings.ToLower(pick(rng, pools["first_names"])),
			strings.ToLower(sanitizeName(pick(rng, pools["last_names"]))),
			index+1, pick(rng, emailDomains))
	case strings.Contains(name, "phone"):
		return randPhone(rng)
	case strings.Contains(name, "product") && strings.Contains(name, "name"):
		return pick(rng, productAdjectives) + " " + pick(rng, productNouns)
	case strings.Contains(name, "name"):
		return pick(rng, pools["first_names"]) + " " + pick(rng, pools["last_names"])
	case strings.Contains(name, "address"):
		return fmt.Sprintf("%d %s, %s", rng.Intn(9899)+100, pick(rng, streets), pick(rng, cities))
	case strings.Contains(name, "description"), strings.Contains(name, "notes"),
		strings.Contains(name, "bio"), strings.Contains(name, "comment"):
		return pick(rng, sentences)
	case strings.Contains(name, "url"), strings.Contains(name, "link"):
		return fmt.Sprintf("https://example.com/items/%d", rng.Intn(100000))
	case strings.Contains(name, "version"):
		return randSemver(rng)
	case strings.Contains(name, "sku"):
		return "SKU-" + randString(rng, 8, alnum)
	case strings.Contains(name, "code"):
		return randString(rng, 8, alnum)
	default:
		if col.Unique {
			return fmt.Sprintf("%s-%06d", pick(rng, words), index+1)
		}
		return fmt.Sprintf("%s %s %d", pick(rng, words), pick(rng, words), rng.Intn(1000))
	}
}

func (g *Generator) fromPool(pool string, rng *rand.Rand) string {
	values, ok := pools[pool]
	if !ok {
		return pool
	}
	return pick(rng, values)
}

func (g *Generator) dateForColumn(col schema.Column, rng *rand.Rand) time.Time {
	name := strings.ToLower(col.Name)
	if strings.Contains(name, "birth") {
		return epoch.AddDate(-(20 + rng.Intn(40)), 0, -rng.Intn(365))
	}
	return epoch.AddDate(0, 0, -rng.Intn(5*365))
}

func (g *Generator) jsonForColumn(col schema.Column, rng *rand.Rand) map[string]any {
	name := strings.ToLower(col.Name)
	switch {
	case strings.Contains(name, "address"):
		return map[string]any{
			"street":      fmt.Sprintf("%d %s", rng.Intn(9899)+100, pick(rng, streets)),
			"city":        pick(rng, cities),
			"postal_code": fmt.Sprintf("%05d", rng.Intn(100000)),
			"country":     pick(rng, pools["countries"]),
		}
	case strings.Contains(name, "contact"):
		return map[string]any{
			"name":         pick(rng, pools["first_names"]) + " " + pick(rng, pools["last_names"]),
			"phone":        randPhone(rng),
			"relationship": pick(rng, relations),
		}
	case strings.Contains(name, "preference"):
		return map[string]any{
			"language":      pick(rng, languages),
			"notifications": rng.Intn(2) == 1,
			"theme":         pick(rng, []string{"light", "dark", "system"}),
		}
	case strings.Contains(name, "spec"):
		return map[string]any{
			"material":        pick(rng, materials),
			"weight_g":        rng.Intn(20000) + 50,
			"warranty_months": []int{6, 12, 24, 36}[rng.Intn(4)],
		}
	case strings.Contains(name, "shipping"):
		return map[string]any{
			"carrier":       pick(rng, carriers),
			"days_min":      rng.Intn(3) + 1,
			"days_max":      rng.Intn(7) + 4,
			"free_shipping": rng.Intn(2) == 1,
		}
	case strings.Contains(name, "supplier"):
		return map[string]any{
			"supplier_id": rng.Intn(900) + 100,
			"name":        pick(rng, pools["brands"]),
			"country":     pick(rng, pools["countries"]),
		}
	case strings.Contains(name, "alert"):
		return map[string]any{
			"threshold": math.Round(rng.Float64()*10000) / 100,
			"enabled":   rng.Intn(2) == 1,
		}
	default:
		return map[string]any{
			"source":  pick(rng, words),
			"value":   rng.Intn(1000),
			"checked": rng.Intn(2) == 1,
		}
	}
}

func (g *Generator) listForColumn(col schema.Column, rng *rand.Rand) any {
	n := rng.Intn(g.maxListLen) + 1
	switch col.Type.Elem {
	case schema.KindString:
		if col.Pool != "" {
			if values, ok := pools[col.Pool]; ok {
				return sample(rng, values, n)
			}
		}
		name := strings.ToLower(col.Name)
		out := make([]string, n)
		for i := range out {
			if strings.Contains(name, "sku") {
				out[i] = "SKU-" + randString(rng, 8, alnum)
			} else {
				out[i] = pick(rng, words)
			}
		}
		return out
	case schema.KindFloat64:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Round(rng.Float64()*10000) / 100
		}
		return out
	default:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(rng.Intn(1000) + 1)
		}
		return out
	}
}

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

// sanitizeName strips the accents and spaces that surname pools carry so
// generated emails stay ASCII.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pow10(n int) int64 {
	out := int64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}
