package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseDate(t *testing.T) {
	got, err := ParseDate("06/01/2024")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, 6, 1), got)

	got, err = ParseDate(" 2/1/2022 ")
	require.NoError(t, err)
	assert.Equal(t, Date(2022, 2, 1), got)

	for _, bad := range []string{"", "2024-06-01", "13/01/2024", "06/31/2024", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func Test_FormatDate(t *testing.T) {
	assert.Equal(t, "06/01/2024", FormatDate(Date(2024, 6, 1)))
}

func Test_ParsePrice(t *testing.T) {
	price, err := ParsePrice("99.50")
	require.NoError(t, err)
	assert.Equal(t, 99.5, price)

	price, err = ParsePrice("0")
	require.NoError(t, err)
	assert.Zero(t, price)

	for _, bad := range []string{"", "abc", "-1", "12,50"} {
		_, err := ParsePrice(bad)
		assert.ErrorIs(t, err, ErrInvalidPrice, bad)
	}
}

func Test_ParseRoomTypeLabel(t *testing.T) {
	rt, err := ParseRoomTypeLabel("1")
	require.NoError(t, err)
	assert.Equal(t, Single, rt)

	rt, err = ParseRoomTypeLabel("2")
	require.NoError(t, err)
	assert.Equal(t, Double, rt)

	for _, bad := range []string{"", "0", "3", "single", "11"} {
		_, err := ParseRoomTypeLabel(bad)
		assert.ErrorIs(t, err, ErrInvalidRoomType, bad)
	}
}

func Test_RoomType_Text(t *testing.T) {
	b, err := Double.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "DOUBLE", string(b))
	assert.Equal(t, "1", Single.Label())

	var rt RoomType
	require.NoError(t, rt.UnmarshalText([]byte("2")))
	assert.Equal(t, Double, rt)
	require.NoError(t, rt.UnmarshalText([]byte("SINGLE")))
	assert.Equal(t, Single, rt)
	assert.ErrorIs(t, rt.UnmarshalText([]byte("SUITE")), ErrInvalidRoomType)

	_, err = RoomType(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func Test_Room_EqualComparesNumberOnly(t *testing.T) {
	assert.True(t, Room{Number: "101", Price: 100, Type: Single}.Equal(Room{Number: "101", Price: 5, Type: Double}))
	assert.False(t, room101.Equal(room102))
}
