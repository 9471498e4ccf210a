package converter

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// NativeUnitName is the unit used by the ETH gas station API (gwei * 10)
	NativeUnitName = "gwei * 10 (1e10 wei)"
	// GweiUnitName is the gwei unit (1e9 wei)
	GweiUnitName = "gwei (1e9 wei)"
	// WeiUnitName is the base unit
	WeiUnitName = "wei (base units)"
)

const (
	nativeToGweiExp = 1
	gweiToWeiExp    = 9

	// MaxExponentMagnitude bounds the decimal exponent of both the input and the converted value
	MaxExponentMagnitude = 10000
)

// NativeUnitsToGwei converts a value expressed in the gas station units (gwei * 10) to gwei.
// The amount can be a decimal string, any integer or float kind, a *big.Int or a decimal.Decimal.
func NativeUnitsToGwei(amount interface{}) (decimal.Decimal, error) {
	return shiftNonNegative(amount, NativeUnitName, -nativeToGweiExp)
}

// GweiToWei converts a value expressed in gwei to wei
func GweiToWei(amount interface{}) (decimal.Decimal, error) {
	return shiftNonNegative(amount, GweiUnitName, gweiToWeiExp)
}

// WeiToGwei converts a value expressed in wei to gwei
func WeiToGwei(amount interface{}) (decimal.Decimal, error) {
	return shiftNonNegative(amount, WeiUnitName, -gweiToWeiExp)
}

func shiftNonNegative(amount interface{}, unit string, shift int32) (decimal.Decimal, error) {
	value, err := toDecimal(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v, expected a non-negative value in %s", ErrInvalidAmount, err, unit)
	}

	// bounded before the value is shifted or rendered
	exp := int64(value.Exponent())
	if !isExponentInRange(exp) || !isExponentInRange(exp+int64(shift)) {
		return decimal.Zero, fmt.Errorf("%w: exponent %d out of range, expected a value in %s with an exponent within ±%d",
			ErrInvalidAmount, exp, unit, MaxExponentMagnitude)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s, expected a non-negative value in %s", ErrInvalidAmount, value.String(), unit)
	}

	return value.Shift(shift), nil
}

func isExponentInRange(exp int64) bool {
	return exp >= -MaxExponentMagnitude && exp <= MaxExponentMagnitude
}

func toDecimal(amount interface{}) (decimal.Decimal, error) {
	switch v := amount.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, fmt.Errorf("nil decimal")
		}
		return *v, nil
	case string:
		return decimal.NewFromString(v)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int8:
		return decimal.NewFromInt(int64(v)), nil
	case int16:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), nil
	case uint8:
		return decimal.NewFromInt(int64(v)), nil
	case uint16:
		return decimal.NewFromInt(int64(v)), nil
	case uint32:
		return decimal.NewFromInt(int64(v)), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return decimal.Zero, fmt.Errorf("%v is not a finite number", v)
		}
		return decimal.NewFromFloat32(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("%v is not a finite number", v)
		}
		return decimal.NewFromFloat(v), nil
	case *big.Int:
		if v == nil {
			return decimal.Zero, fmt.Errorf("nil big integer")
		}
		return decimal.NewFromBigInt(v, 0), nil
	}

	return decimal.Zero, fmt.Errorf("unsupported amount type %T", amount)
}
