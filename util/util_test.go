package util

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 2, Min(5, 2))
	assert.Equal(t, -1.5, Min(0.5, -1.5))
}

func TestIndentedJSON(t *testing.T) {
	got := IndentedJSON(map[string]int{"win": 1})
	assert.Equal(t, "{\n  \"win\": 1\n}", got)
}

func TestGetModuleLogger(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	out := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	defer logrus.SetOutput(out)
	GetModuleLogger("cache").Info("hello")
	assert.Contains(t, buf.String(), "module=cache")
	assert.Contains(t, buf.String(), "hello")
}
