package telegram

import (
	"encoding/hex"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:TEST-token"

// signedInitData builds init data signed with testToken.
func signedInitData(t *testing.T, authDate time.Time) string {
	t.Helper()
	v, err := NewValidator(testToken, 0)
	require.NoError(t, err)

	values := url.Values{}
	values.Set("query_id", "AAHdF6IQAAAAAN0XohDhrOrc")
	values.Set("user", `{"id":279058397,"first_name":"Vladislav","last_name":"Kibenko","username":"vdkfrost","language_code":"ru"}`)
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	values.Set("hash", hex.EncodeToString(v.sign(values)))
	return values.Encode()
}

func TestParse(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		raw := signedInitData(t, time.Unix(1700000000, 0))
		data, err := Parse(raw)
		require.NoError(t, err)
		require.NotNil(t, data.User)
		assert.Equal(t, int64(279058397), data.UserID())
		assert.Equal(t, "Vladislav Kibenko", data.User.DisplayName())
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), data.AuthDate)
		assert.NotEmpty(t, data.Hash)
	})

	t.Run("no user", func(t *testing.T) {
		data, err := Parse("auth_date=1&hash=00")
		require.NoError(t, err)
		assert.Nil(t, data.User)
		assert.Zero(t, data.UserID())
	})

	t.Run("malformed user", func(t *testing.T) {
		_, err := Parse("user=%7Bnot-json")
		assert.Error(t, err)
	})

	t.Run("malformed auth date", func(t *testing.T) {
		_, err := Parse("auth_date=yesterday")
		assert.Error(t, err)
	})
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ann", User{FirstName: "Ann"}.DisplayName())
	assert.Equal(t, "Ann Lee", User{FirstName: "Ann", LastName: "Lee"}.DisplayName())
}

func TestNilInitDataUserID(t *testing.T) {
	var d *InitData
	assert.Zero(t, d.UserID())
}

func TestValidator(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		v, err := NewValidator("", 0)
		assert.Nil(t, v)
		assert.Error(t, err)
	})

	t.Run("valid signature", func(t *testing.T) {
		v, err := NewValidator(testToken, 0)
		require.NoError(t, err)

		data, err := v.Validate(signedInitData(t, time.Now()))
		require.NoError(t, err)
		assert.Equal(t, "vdkfrost", data.User.Username)
	})

	t.Run("tampered payload", func(t *testing.T) {
		v, err := NewValidator(testToken, 0)
		require.NoError(t, err)

		values, err := url.ParseQuery(signedInitData(t, time.Now()))
		require.NoError(t, err)
		values.Set("user", `{"id":1,"first_name":"Mallory"}`)

		_, err = v.Validate(values.Encode())
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("other bot token", func(t *testing.T) {
		v, err := NewValidator("654321:OTHER", 0)
		require.NoError(t, err)

		_, err = v.Validate(signedInitData(t, time.Now()))
		assert.ErrorIs(t, err, ErrSignatureMismatch)
	})

	t.Run("expired", func(t *testing.T) {
		v, err := NewValidator(testToken, time.Hour)
		require.NoError(t, err)
		now := time.Now()
		v.now = func() time.Time { return now }

		_, err = v.Validate(signedInitData(t, now.Add(-2*time.Hour)))
		assert.ErrorIs(t, err, ErrExpired)

		_, err = v.Validate(signedInitData(t, now.Add(-30*time.Minute)))
		assert.NoError(t, err)
	})
}
