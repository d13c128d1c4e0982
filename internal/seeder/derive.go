package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seedforge-io/seedforge/internal/schema"
)

// A derivePolicy rewrites generated values so related columns agree with
// each other. Policies run after independent generation; cols and row are
// aligned the way Generator.Row returns them.
type derivePolicy func(cols []schema.Column, row schema.Row, rng *rand.Rand) error

var derivePolicies = map[string]derivePolicy{
	"invoice_totals": deriveInvoiceTotals,
}

// colPos returns the index of the named column, or -1 when the table does
// not carry it. Policies skip columns the schema left out.
func colPos(cols []schema.Column, name string) int {
	for i, c := range cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func setValue(cols []schema.Column, row schema.Row, name string, v any) {
	if i := colPos(cols, name); i >= 0 {
		row[i] = v
	}
}

func getValue(cols []schema.Column, row schema.Row, name string) (any, bool) {
	if i := colPos(cols, name); i >= 0 {
		return row[i], true
	}
	return nil, false
}

// deriveInvoiceTotals builds a line-item document and makes the monetary
// columns add up: every line total is unit price times quantity, the
// subtotal is the sum of the lines, the discount never exceeds the smaller
// of 20% of the subtotal and 500, tax applies to the discounted subtotal,
// and the grand total is subtotal - discount + tax + shipping. Amounts are
// rounded to cents before the total is computed so the stored values
// satisfy the identity exactly.
func deriveInvoiceTotals(cols []schema.Column, row schema.Row, rng *rand.Rand) error {
	itemCount := rng.Intn(15) + 1
	items := make([]map[string]any, 0, itemCount)
	subtotal := decimal.Zero
	units := []string{"PCS", "KG", "M", "L"}
	for i := 0; i < itemCount; i++ {
		unitPrice := decimal.New(int64(rng.Intn(99001)+1000), -2)
		qty := rng.Intn(50) + 1
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(qty)))
		items = append(items, map[string]any{
			"item_id":      i + 1,
			"product_code": fmt.Sprintf("PROD-%04d", rng.Intn(9000)+1000),
			"description":  fmt.Sprintf("Manufactured Part %d", rng.Intn(900)+100),
			"quantity":     qty,
			"unit_price":   unitPrice.String(),
			"total_amount": lineTotal.String(),
			"uom":          units[rng.Intn(len(units))],
			"hs_code":      fmt.Sprintf("%04d.%02d", rng.Intn(9000)+1000, rng.Intn(90)+10),
		})
		subtotal = subtotal.Add(lineTotal)
	}

	discountCap := subtotal.Mul(decimal.New(2, -1)).Round(2)
	if cap500 := decimal.New(50000, -2); discountCap.GreaterThan(cap500) {
		discountCap = cap500
	}
	discount := decimal.New(rng.Int63n(discountCap.Shift(2).IntPart()+1), -2)

	taxRate := 0.05 + rng.Float64()*0.20
	if v, ok := getValue(cols, row, "tax_rate"); ok {
		if r, ok := v.(float64); ok {
			taxRate = r
		}
	}
	tax := subtotal.Sub(discount).Mul(decimal.NewFromFloat(taxRate)).Round(2)
	shipping := decimal.New(rng.Int63n(20001), -2)
	total := subtotal.Sub(discount).Add(tax).Add(shipping)

	setValue(cols, row, "invoice_items", items)
	setValue(cols, row, "items_count", int64(itemCount))
	setValue(cols, row, "subtotal_amount", subtotal)
	setValue(cols, row, "discount_amount", discount)
	setValue(cols, row, "tax_amount", tax)
	setValue(cols, row, "shipping_cost", shipping)
	setValue(cols, row, "total_amount", total)

	billing, _ := getValue(cols, row, "billing_country")
	shippingCountry, hasShip := getValue(cols, row, "shipping_country")
	international := hasShip && shippingCountry != nil && shippingCountry != billing
	setValue(cols, row, "is_international", international)

	var paid bool
	if s, ok := getValue(cols, row, "status"); ok {
		paid = s == "PAID"
		setValue(cols, row, "is_paid", paid)
	}

	if v, ok := getValue(cols, row, "invoice_date"); ok {
		if invoiced, ok := v.(time.Time); ok {
			setValue(cols, row, "due_date", invoiced.AddDate(0, 0, rng.Intn(76)+15))
			if paid {
				settled := invoiced.AddDate(0, 0, rng.Intn(30)+1).
					Add(time.Duration(rng.Intn(24*3600)) * time.Second)
				setValue(cols, row, "payment_date", settled)
			} else {
				setValue(cols, row, "payment_date", nil)
			}
		}
	}
	return nil
}
