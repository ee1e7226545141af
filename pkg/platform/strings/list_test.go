package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"only separators", " , ,", []string{}},
		{"trims and dedupes", " kafka-1:9092 ,kafka-2:9092,kafka-1:9092", []string{"kafka-1:9092", "kafka-2:9092"}},
		{"keeps case", "Broker,broker", []string{"Broker", "broker"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.raw))
		})
	}
}

func TestSplitListLower(t *testing.T) {
	assert.Equal(t, []string{"log", "redis"}, SplitListLower("LOG, Redis ,log"))
}
