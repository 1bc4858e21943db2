package dca

import (
	"encoding/json"
	"fmt"
)

// Percent is a percentage value, e.g. Percent(5) is 5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Metric is a scalar statistic that can be explicitly undefined, e.g. a
// Sharpe ratio over a zero-volatility series. An undefined metric is
// reported as such, never replaced by a fabricated number.
type Metric struct {
	value   float64
	defined bool
}

// DefinedMetric returns a defined Metric holding the given value.
func DefinedMetric(value float64) Metric { return Metric{value: value, defined: true} }

// UndefinedMetric returns the explicitly undefined Metric.
func UndefinedMetric() Metric { return Metric{} }

// Defined reports whether the metric holds a value.
func (m Metric) Defined() bool { return m.defined }

// Value returns the metric value and whether it is defined.
func (m Metric) Value() (float64, bool) { return m.value, m.defined }

func (m Metric) String() string {
	if !m.defined {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", m.value)
}

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.defined {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Metric{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = DefinedMetric(v)
	return nil
}
