package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/qyinm/shoptui/types"
)

type productsResponse struct {
	Products json.RawMessage `json:"products"`
	Total    json.RawMessage `json:"total"`
}

// productJSON keeps every field raw so one odd field never drops the item.
type productJSON struct {
	ID          json.RawMessage `json:"id"`
	Title       json.RawMessage `json:"title"`
	Description json.RawMessage `json:"description"`
	Thumbnail   json.RawMessage `json:"thumbnail"`
	Price       json.RawMessage `json:"price"`
	Rating      json.RawMessage `json:"rating"`
}

// ParseProducts decodes a {products, total} body.
// A missing or non-array products field yields an empty page, elements that
// are not objects are skipped, and fields of the wrong type fall back to
// their zero value. A missing or non-numeric total yields 0.
func ParseProducts(r io.Reader) (types.Page, error) {
	var body productsResponse
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return types.Page{}, errors.Wrap(err, "decode response")
	}

	products := []types.Product{}
	var elems []json.RawMessage
	if isArray(body.Products) && json.Unmarshal(body.Products, &elems) == nil {
		products = make([]types.Product, 0, len(elems))
		for _, elem := range elems {
			var p productJSON
			if !isObject(elem) || json.Unmarshal(elem, &p) != nil {
				continue
			}
			products = append(products, types.NewProduct(
				int(intField(p.ID)),
				stringField(p.Title),
				stringField(p.Description),
				stringField(p.Thumbnail),
				decimalField(p.Price),
				numberField(p.Rating),
			))
		}
	}

	total := 0
	if n, ok := integral(body.Total); ok && n >= 0 {
		total = int(n)
	}
	return types.NewPage(products, total), nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// integral accepts a JSON number with no fractional part, so 57 and 57.0
// both read as 57.
func integral(raw json.RawMessage) (int64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int64(f), true
}

// intField reads an id given as a number or a numeric string.
func intField(raw json.RawMessage) int64 {
	if n, ok := integral(raw); ok {
		return n
	}
	if n, err := strconv.ParseInt(strings.TrimSpace(stringField(raw)), 10, 64); err == nil {
		return n
	}
	return 0
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

// decimalField reads a price given as a number or a numeric string.
func decimalField(raw json.RawMessage) decimal.Decimal {
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d
	}
	return decimal.Zero
}

// numberField reads a float given as a number or a numeric string.
func numberField(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(stringField(raw)), 64); err == nil {
		return f
	}
	return 0
}
