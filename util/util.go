package util

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Min returns the smaller one of x and y
func Min[K float64 | int](x, y K) K {
	if x > y {
		return y
	}
	return x
}

func IndentedJSON(o interface{}) string {
	b, _ := json.MarshalIndent(o, "", "  ")
	return string(b)
}

// GetModuleLogger returns a logrus.Entry tagged with the module name
func GetModuleLogger(name string) logrus.FieldLogger {
	return logrus.WithField("module", name)
}
