package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueFileName(t *testing.T) {
	used := map[string]bool{}
	taken := func(n string) bool { return used[n] }

	for _, tc := range []struct {
		key  string
		want string
	}{
		{"AB-1234", "AB_1234.txt"},
		{"AB_1234", "AB_1234_2.txt"},
		{"AB.1234", "AB_1234_3.txt"},
		{"1138661", "1138661.txt"},
	} {
		got := UniqueFileName(tc.key, taken)
		assert.Equal(t, tc.want, got, tc.key)
		used[got] = true
	}
}

func TestLatestSourceName(t *testing.T) {
	assert.Equal(t, "latest_data.xlsx", LatestSourceName("Order 12.XLSX"))
	assert.Equal(t, "latest_data.csv", LatestSourceName("order.csv"))
	assert.Equal(t, "latest_data", LatestSourceName("order"))
}

func TestValidSessionName(t *testing.T) {
	assert.True(t, ValidSessionName("session_2024_order_csv"))
	for _, name := range []string{"other", "session_..", "session_a/b", "../session_a", ""} {
		assert.False(t, ValidSessionName(name), name)
	}
}
