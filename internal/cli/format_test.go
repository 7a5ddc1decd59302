package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "07-03-24", FormatDate(d))
}

func TestFormatDateZero(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
}
