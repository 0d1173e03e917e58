// Package render turns a result set into the JSON text printed by the fetch
// command.
package render

import (
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"time"

	"citibike/backend/internal/model"

	"cloud.google.com/go/civil"
	"github.com/goccy/go-json"
)

// maxDecimalScale is the fraction digits of a BigQuery BIGNUMERIC, used for
// rationals with no finite decimal form.
const maxDecimalScale = 38

// Render encodes rows as a JSON array with one object per row. Values JSON
// cannot represent directly are converted by ToJSONValue first.
func Render(rows model.ResultSet) (string, error) {
	items := make([]map[string]any, len(rows))
	for i, row := range rows {
		item := make(map[string]any, len(row))
		for name, value := range row {
			item[name] = ToJSONValue(value)
		}
		items[i] = item
	}

	out, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func ToJSONValue(value any) any {
	switch v := value.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return v
	case float32:
		return floatValue(float64(v), v)
	case float64:
		return floatValue(v, v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case civil.Date:
		return v.String()
	case civil.Time:
		return v.String()
	case civil.DateTime:
		return v.String()
	case *big.Rat:
		if v == nil {
			return nil
		}
		return decimalString(v)
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ToJSONValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = ToJSONValue(e)
		}
		return out
	case fmt.Stringer:
		return v.String()
	}

	if _, err := json.Marshal(value); err != nil {
		return fmt.Sprint(value)
	}
	return value
}

func floatValue(f float64, original any) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	return original
}

// decimalString prints r exactly when its denominator only has factors 2 and
// 5, which holds for every NUMERIC and BIGNUMERIC value.
func decimalString(r *big.Rat) string {
	scale, ok := decimalScale(r.Denom())
	if !ok {
		scale = maxDecimalScale
	}
	return r.FloatString(scale)
}

func decimalScale(denom *big.Int) (int, bool) {
	n := new(big.Int).Set(denom)
	twos := 0
	for n.Sign() > 0 && n.Bit(0) == 0 {
		n.Rsh(n, 1)
		twos++
	}

	five := big.NewInt(5)
	q, m := new(big.Int), new(big.Int)
	fives := 0
	for n.Sign() > 0 {
		q.QuoRem(n, five, m)
		if m.Sign() != 0 {
			break
		}
		n.Set(q)
		fives++
	}

	if n.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	return max(twos, fives), true
}
