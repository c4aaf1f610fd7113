package tools

import (
	"fmt"
	"math"

	"github.com/Suproteek-Banerjee/one-fourth-finance-sub000/internal/calculations"
)

func floatParam(params map[string]interface{}, name string) (float64, error) {
	v, ok, err := optionalFloat(params, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, invalid(fmt.Errorf("%s: параметр обязателен", name))
	}
	return v, nil
}

func optionalFloat(params map[string]interface{}, name string) (float64, bool, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, invalid(fmt.Errorf("%s: ожидалось число, получено %T", name, raw))
	}
}

func intParam(params map[string]interface{}, name string) (int, error) {
	v, err := floatParam(params, name)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, invalid(fmt.Errorf("%s: ожидалось целое число, получено %v", name, v))
	}
	return int(v), nil
}

func stringParam(params map[string]interface{}, name string) (string, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid(fmt.Errorf("%s: ожидалась строка, получено %T", name, raw))
	}
	return s, nil
}

func requiredString(params map[string]interface{}, name string) (string, error) {
	s, err := stringParam(params, name)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", invalid(fmt.Errorf("%s: параметр обязателен", name))
	}
	return s, nil
}

func objectParam(params map[string]interface{}, name string) (map[string]interface{}, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return nil, invalid(fmt.Errorf("%s: параметр обязателен", name))
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, invalid(fmt.Errorf("%s: ожидался объект, получено %T", name, raw))
	}
	return obj, nil
}

func weightsParam(params map[string]interface{}, name string) (calculations.AllocationWeights, error) {
	obj, err := objectParam(params, name)
	if err != nil {
		return calculations.AllocationWeights{}, err
	}

	var w calculations.AllocationWeights
	fields := []struct {
		key string
		dst *float64
	}{
		{"stocks", &w.Stocks},
		{"bonds", &w.Bonds},
		{"real_estate", &w.RealEstate},
		{"crypto", &w.Crypto},
	}
	for _, f := range fields {
		v, _, err := optionalFloat(obj, f.key)
		if err != nil {
			return calculations.AllocationWeights{}, err
		}
		*f.dst = v
	}
	return w, nil
}

func transactionsParam(params map[string]interface{}, name string) ([]calculations.TransactionSample, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return nil, invalid(fmt.Errorf("%s: параметр обязателен", name))
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, invalid(fmt.Errorf("%s: ожидался массив, получено %T", name, raw))
	}

	out := make([]calculations.TransactionSample, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, invalid(fmt.Errorf("%s[%d]: ожидался объект", name, i))
		}
		id, err := stringParam(obj, "id")
		if err != nil {
			return nil, err
		}
		if id == "" {
			id = fmt.Sprintf("tx-%d", i+1)
		}
		amount, err := floatParam(obj, "amount")
		if err != nil {
			return nil, err
		}
		country, err := stringParam(obj, "country")
		if err != nil {
			return nil, err
		}
		if country == "" {
			country = calculations.HomeCountry
		}
		retries, _, err := optionalFloat(obj, "retries")
		if err != nil {
			return nil, err
		}
		if retries < 0 {
			return nil, invalid(fmt.Errorf("%s[%d].retries: значение должно быть ≥ 0", name, i))
		}
		out = append(out, calculations.TransactionSample{
			ID:      id,
			Amount:  amount,
			Country: country,
			Retries: int(retries),
		})
	}
	return out, nil
}
